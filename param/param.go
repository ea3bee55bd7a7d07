// Package param defines the query parameters understood by the document
// store and how each one is written to the query string.
//
// A [Param] pairs an invariant wire name with a typed value. Values are only
// ever serialized, never parsed back from their wire form:
//
//	p := param.Enum(param.NameVersionType, param.VersionExternalGTE)
//	p.Name()      // "version_type"
//	p.Serialize() // "external_gte"
package param

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Wire names of every query parameter used by the operations in this module.
const (
	NameAllowNoIndices    = "allow_no_indices"
	NameConsistency       = "consistency"
	NameExpandWildcards   = "expand_wildcards"
	NameFields            = "fields"
	NameIgnoreUnavailable = "ignore_unavailable"
	NameIndex             = "index"
	NameLang              = "lang"
	NameLocal             = "local"
	NameMasterTimeout     = "master_timeout"
	NameMinScore          = "min_score"
	NameOpType            = "op_type"
	NameParent            = "parent"
	NamePreference        = "preference"
	NameRealtime          = "realtime"
	NameRefresh           = "refresh"
	NameRetryOnConflict   = "retry_on_conflict"
	NameRouting           = "routing"
	NameScript            = "script"
	NameScriptID          = "script_id"
	NameScriptedUpsert    = "scripted_upsert"
	NameSource            = "_source"
	NameSourceExclude     = "_source_exclude"
	NameSourceInclude     = "_source_include"
	NameTimeout           = "timeout"
	NameTimestamp         = "timestamp"
	NameTTL               = "ttl"
	NameType              = "type"
	NameVersion           = "version"
	NameVersionType       = "version_type"
)

// Kind identifies how a parameter value is serialized.
type Kind int8

const (
	KindString Kind = iota + 1
	KindBool
	KindInt
	KindFloat
	KindEnum
	KindDuration
	KindList
	KindTime
)

var kindStrings = [...]string{
	KindString:   "string",
	KindBool:     "bool",
	KindInt:      "int",
	KindFloat:    "float",
	KindEnum:     "enum",
	KindDuration: "duration",
	KindList:     "list",
	KindTime:     "time",
}

func (k Kind) String() string {
	if k <= 0 || int(k) >= len(kindStrings) {
		return "kind(" + strconv.Itoa(int(k)) + ")"
	}
	return kindStrings[k]
}

// Param is a named, typed query parameter value.
// The zero Param is unset and serializes to the empty string.
type Param struct {
	name string
	kind Kind

	s    string
	b    bool
	i    int64
	f    float64
	e    fmt.Stringer
	d    time.Duration
	list []string
	t    time.Time
}

// Pair is a serialized (name, value) query string entry.
type Pair struct {
	Name  string
	Value string
}

func (p Pair) String() string {
	return p.Name + "=" + p.Value
}

// String returns a string parameter.
func String(name, v string) Param {
	return Param{name: name, kind: KindString, s: v}
}

// Bool returns a boolean parameter, serialized as "true" or "false".
func Bool(name string, v bool) Param {
	return Param{name: name, kind: KindBool, b: v}
}

// Int returns an integer parameter. Negative values are passed through.
func Int(name string, v int64) Param {
	return Param{name: name, kind: KindInt, i: v}
}

// Float returns a floating point parameter, serialized in its shortest form.
func Float(name string, v float64) Param {
	return Param{name: name, kind: KindFloat, f: v}
}

// Enum returns a parameter holding one of the enumerations in this package,
// or any other [fmt.Stringer] producing the wire literal.
func Enum(name string, v fmt.Stringer) Param {
	return Param{name: name, kind: KindEnum, e: v}
}

// Duration returns a parameter serialized as a whole number of milliseconds
// without a unit suffix.
func Duration(name string, v time.Duration) Param {
	return Param{name: name, kind: KindDuration, d: v}
}

// List returns a parameter whose values are comma-joined verbatim.
func List(name string, v ...string) Param {
	cpy := make([]string, len(v))
	copy(cpy, v)
	return Param{name: name, kind: KindList, list: cpy}
}

// Time returns a parameter serialized as an RFC 3339 UTC timestamp.
func Time(name string, v time.Time) Param {
	return Param{name: name, kind: KindTime, t: v}
}

// Name returns the wire name of the parameter.
func (p Param) Name() string {
	return p.name
}

// Kind reports the serialization kind of the parameter.
func (p Param) Kind() Kind {
	return p.kind
}

// IsZero reports whether p was never constructed.
func (p Param) IsZero() bool {
	return p.kind == 0
}

// Serialize renders the parameter value in its wire form.
func (p Param) Serialize() string {
	switch p.kind {
	case KindString:
		return p.s
	case KindBool:
		return strconv.FormatBool(p.b)
	case KindInt:
		return strconv.FormatInt(p.i, 10)
	case KindFloat:
		return strconv.FormatFloat(p.f, 'f', -1, 64)
	case KindEnum:
		if p.e == nil {
			return ""
		}
		return p.e.String()
	case KindDuration:
		return strconv.FormatInt(p.d.Milliseconds(), 10)
	case KindList:
		return strings.Join(p.list, ",")
	case KindTime:
		return p.t.UTC().Format(time.RFC3339)
	default:
		return ""
	}
}

// Pair returns the serialized (name, value) entry for p.
func (p Param) Pair() Pair {
	return Pair{Name: p.name, Value: p.Serialize()}
}

func (p Param) String() string {
	return p.Pair().String()
}
