// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"encoding/json"
	"fmt"
)

// Supported query methods.
const (
	QueryMethodEqual     = "equal"
	QueryMethodOrderAsc  = "orderAsc"
	QueryMethodOrderDesc = "orderDesc"
)

// QueryParam is the URL query parameter carrying list-documents queries.
const QueryParam = "queries[]"

// Query is a single server-side filter or ordering directive of the
// list-documents call. It travels as a JSON string in [QueryParam].
type Query struct {
	Method    string `json:"method"`
	Attribute string `json:"attribute,omitempty"`
	Values    []any  `json:"values,omitempty"`
}

// QueryEqual matches documents whose attribute equals any of values.
func QueryEqual(attribute string, values ...any) Query {
	return Query{Method: QueryMethodEqual, Attribute: attribute, Values: values}
}

// QueryOrderAsc orders results ascending by attribute.
func QueryOrderAsc(attribute string) Query {
	return Query{Method: QueryMethodOrderAsc, Attribute: attribute}
}

// QueryOrderDesc orders results descending by attribute.
func QueryOrderDesc(attribute string) Query {
	return Query{Method: QueryMethodOrderDesc, Attribute: attribute}
}

// String returns the JSON encoding of q.
func (q Query) String() string {
	b, err := json.Marshal(q)
	if err != nil {
		return ""
	}
	return string(b)
}

// ParseQuery decodes a query from its JSON encoding.
func ParseQuery(raw string) (Query, error) {
	var q Query
	if err := json.Unmarshal([]byte(raw), &q); err != nil {
		return Query{}, fmt.Errorf("invalid query %q: %w", raw, err)
	}
	return q, nil
}
