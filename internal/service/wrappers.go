// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

// AccountServiceWrapper defines middleware composition for AccountService.
// Implementations wrap an existing AccountService to add behavior such as
// logging or validating.
type AccountServiceWrapper interface {
	Wrap(AccountService) AccountService
}

// DocumentServiceWrapper is the [DocumentService] counterpart of
// [AccountServiceWrapper].
type DocumentServiceWrapper interface {
	Wrap(DocumentService) DocumentService
}
