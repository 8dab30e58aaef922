// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package models

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"slices"
	"strconv"
	"strings"
)

// AnswerKind identifies the shape of a stored answer.
type AnswerKind int

const (
	KindText AnswerKind = iota
	KindNumber
	KindList
)

func (k AnswerKind) String() string {
	switch k {
	case KindText:
		return "text"
	case KindNumber:
		return "number"
	case KindList:
		return "list"
	}
	return "unknown"
}

var ErrInvalidAnswer = errors.New("answer must be a string, number, or list of strings")

// Answer is a single response value: a string, a number, or a list of
// strings (checkbox questions). The zero value is an empty string answer.
type Answer struct {
	kind AnswerKind
	text string
	list []string
}

func TextAnswer(s string) Answer {
	return Answer{kind: KindText, text: s}
}

// NumberAnswer stores f as a number. NaN and infinities have no JSON form
// and are kept as text.
func NumberAnswer(f float64) Answer {
	text := strconv.FormatFloat(f, 'f', -1, 64)
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return TextAnswer(text)
	}
	return Answer{kind: KindNumber, text: text}
}

func ListAnswer(values ...string) Answer {
	list := make([]string, len(values))
	copy(list, values)
	return Answer{kind: KindList, list: list}
}

func (a Answer) Kind() AnswerKind { return a.kind }

// Text returns the string form of a text or number answer.
// List answers return "".
func (a Answer) Text() string {
	if a.kind == KindList {
		return ""
	}
	return a.text
}

// List returns a copy of the selected values of a list answer.
func (a Answer) List() []string {
	if a.kind != KindList {
		return nil
	}
	out := make([]string, len(a.list))
	copy(out, a.list)
	return out
}

// IsEmpty reports whether the answer counts as unanswered:
// a blank string or an empty list.
func (a Answer) IsEmpty() bool {
	if a.kind == KindList {
		return len(a.list) == 0
	}
	return strings.TrimSpace(a.text) == ""
}

func (a Answer) Equal(b Answer) bool {
	if a.kind != b.kind {
		return false
	}
	if a.kind == KindList {
		return slices.Equal(a.list, b.list)
	}
	return a.text == b.text
}

func (a Answer) Clone() Answer {
	if a.kind == KindList {
		return ListAnswer(a.list...)
	}
	return a
}

func (a Answer) MarshalJSON() ([]byte, error) {
	switch a.kind {
	case KindNumber:
		return []byte(a.text), nil
	case KindList:
		if a.list == nil {
			return []byte("[]"), nil
		}
		return json.Marshal(a.list)
	default:
		return json.Marshal(a.text)
	}
}

func (a *Answer) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var raw any
	if err := dec.Decode(&raw); err != nil {
		return err
	}

	switch v := raw.(type) {
	case nil:
		*a = TextAnswer("")
	case string:
		*a = TextAnswer(v)
	case json.Number:
		*a = Answer{kind: KindNumber, text: v.String()}
	case []any:
		list := make([]string, 0, len(v))
		for i, item := range v {
			s, ok := item.(string)
			if !ok {
				return fmt.Errorf("list element %d: %w", i, ErrInvalidAnswer)
			}
			list = append(list, s)
		}
		*a = Answer{kind: KindList, list: list}
	default:
		return ErrInvalidAnswer
	}
	return nil
}

// Responses maps question ids to answers. Only questions the user has
// touched have keys.
type Responses map[string]Answer

// Clone returns a deep copy. The result is never nil.
func (r Responses) Clone() Responses {
	out := make(Responses, len(r))
	for id, a := range r {
		out[id] = a.Clone()
	}
	return out
}

// Equal compares two response maps structurally. A key holding an empty
// answer is not the same as an absent key.
func (r Responses) Equal(other Responses) bool {
	if len(r) != len(other) {
		return false
	}
	for id, a := range r {
		b, ok := other[id]
		if !ok || !a.Equal(b) {
			return false
		}
	}
	return true
}

func (r Responses) MarshalJSON() ([]byte, error) {
	if r == nil {
		return []byte("{}"), nil
	}
	return json.Marshal(map[string]Answer(r))
}
