package param_test

import (
	"testing"
	"time"

	"github.com/adamwoolhether/esreq/param"
)

func TestParam_Serialize(t *testing.T) {
	ts := time.Date(2015, time.June, 1, 12, 30, 0, 0, time.FixedZone("X", 2*60*60))

	testCases := []struct {
		name     string
		param    param.Param
		wantName string
		wantVal  string
		wantKind param.Kind
	}{
		{"bool true", param.Bool(param.NameRefresh, true), "refresh", "true", param.KindBool},
		{"bool false", param.Bool(param.NameRealtime, false), "realtime", "false", param.KindBool},
		{"string", param.String(param.NameRouting, "user 1"), "routing", "user 1", param.KindString},
		{"int", param.Int(param.NameVersion, 7), "version", "7", param.KindInt},
		{"negative int passes through", param.Int(param.NameVersion, -3), "version", "-3", param.KindInt},
		{"float", param.Float(param.NameMinScore, 0.5), "min_score", "0.5", param.KindFloat},
		{"whole float", param.Float(param.NameMinScore, 2), "min_score", "2", param.KindFloat},
		{"enum quorum", param.Enum(param.NameConsistency, param.ConsistencyQuorum), "consistency", "quorum", param.KindEnum},
		{"enum external_gte", param.Enum(param.NameVersionType, param.VersionExternalGTE), "version_type", "external_gte", param.KindEnum},
		{"enum create", param.Enum(param.NameOpType, param.OpCreate), "op_type", "create", param.KindEnum},
		{"enum wildcards", param.Enum(param.NameExpandWildcards, param.ExpandClosed), "expand_wildcards", "closed", param.KindEnum},
		{"duration", param.Duration(param.NameTTL, 90*time.Second), "ttl", "90000", param.KindDuration},
		{"list", param.List(param.NameFields, "a", "b", "c"), "fields", "a,b,c", param.KindList},
		{"list no escaping", param.List(param.NameSourceInclude, "obj.*", "x y"), "_source_include", "obj.*,x y", param.KindList},
		{"empty list", param.List(param.NameFields), "fields", "", param.KindList},
		{"time", param.Time(param.NameTimestamp, ts), "timestamp", "2015-06-01T10:30:00Z", param.KindTime},
		{"timeout", param.TimeoutParam(param.NameTimeout, param.MustParseTimeout("1m")), "timeout", "60000", param.KindDuration},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.param.Name(); got != tc.wantName {
				t.Errorf("Name() = %q, want %q", got, tc.wantName)
			}
			if got := tc.param.Serialize(); got != tc.wantVal {
				t.Errorf("Serialize() = %q, want %q", got, tc.wantVal)
			}
			if got := tc.param.Kind(); got != tc.wantKind {
				t.Errorf("Kind() = %v, want %v", got, tc.wantKind)
			}
		})
	}
}

func TestParam_ListCopiesInput(t *testing.T) {
	in := []string{"a", "b"}
	p := param.List(param.NameFields, in...)
	in[0] = "z"

	if got := p.Serialize(); got != "a,b" {
		t.Fatalf("Serialize() = %q, want %q", got, "a,b")
	}
}

func TestParam_Zero(t *testing.T) {
	var p param.Param
	if !p.IsZero() {
		t.Fatal("expected zero Param to report IsZero")
	}
	if got := p.Serialize(); got != "" {
		t.Fatalf("Serialize() = %q, want empty", got)
	}
}

func TestParam_Pair(t *testing.T) {
	pair := param.Bool(param.NameRefresh, true).Pair()
	if pair.Name != "refresh" || pair.Value != "true" {
		t.Fatalf("Pair() = %+v", pair)
	}
	if got := pair.String(); got != "refresh=true" {
		t.Fatalf("String() = %q", got)
	}
}

func TestEnum_OutOfRange(t *testing.T) {
	if got := param.Consistency(9).String(); got != "9" {
		t.Fatalf("String() = %q, want %q", got, "9")
	}
}
