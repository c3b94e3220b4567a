package adapter

import (
	"encoding/json"
)

// QueryMethod names a list filter or ordering.
type QueryMethod string

const (
	// QueryMethodEqual keeps documents whose attribute equals one of the
	// values.
	QueryMethodEqual QueryMethod = "equal"
	// QueryMethodSearch keeps documents whose attribute contains the term,
	// ignoring case.
	QueryMethodSearch QueryMethod = "search"
	// QueryMethodOrderDesc orders by the attribute, greatest first.
	QueryMethodOrderDesc QueryMethod = "orderDesc"
)

// Query is a single list filter or ordering. It marshals to the Appwrite
// query JSON form.
type Query struct {
	Method    QueryMethod `json:"method"`
	Attribute string      `json:"attribute"`
	Values    []any       `json:"values,omitempty"`
}

func QueryEqual(attribute string, value any) Query {
	return Query{Method: QueryMethodEqual, Attribute: attribute, Values: []any{value}}
}

func QuerySearch(attribute, term string) Query {
	return Query{Method: QueryMethodSearch, Attribute: attribute, Values: []any{term}}
}

func QueryOrderDesc(attribute string) Query {
	return Query{Method: QueryMethodOrderDesc, Attribute: attribute}
}

// String returns the JSON form of q.
func (q Query) String() string {
	b, err := json.Marshal(q)
	if err != nil {
		return ""
	}
	return string(b)
}

// firstValue returns the first value of q, or nil.
func (q Query) firstValue() any {
	if len(q.Values) == 0 {
		return nil
	}
	return q.Values[0]
}
