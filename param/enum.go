package param

import "strconv"

// Consistency is the write consistency level required before an operation
// is acknowledged.
type Consistency int8

const (
	ConsistencyOne Consistency = iota
	ConsistencyQuorum
	ConsistencyAll
)

var consistencyStrings = [...]string{"one", "quorum", "all"}

func (c Consistency) String() string {
	return enumString(consistencyStrings[:], int(c))
}

// OpType selects between overwriting and create-only indexing.
type OpType int8

const (
	OpIndex OpType = iota
	OpCreate
)

var opTypeStrings = [...]string{"index", "create"}

func (o OpType) String() string {
	return enumString(opTypeStrings[:], int(o))
}

// MarshalText lets OpType appear in bulk action metadata.
func (o OpType) MarshalText() ([]byte, error) {
	return []byte(o.String()), nil
}

// VersionType controls how a supplied document version is compared.
type VersionType int8

const (
	VersionInternal VersionType = iota
	VersionExternal
	VersionExternalGTE
	VersionForce
)

var versionTypeStrings = [...]string{"internal", "external", "external_gte", "force"}

func (v VersionType) String() string {
	return enumString(versionTypeStrings[:], int(v))
}

// MarshalText lets VersionType appear in bulk action metadata.
func (v VersionType) MarshalText() ([]byte, error) {
	return []byte(v.String()), nil
}

// ExpandWildcards selects which indices a wildcard expression expands to.
type ExpandWildcards int8

const (
	ExpandOpen ExpandWildcards = iota
	ExpandClosed
	ExpandNone
	ExpandAll
)

var expandWildcardsStrings = [...]string{"open", "closed", "none", "all"}

func (e ExpandWildcards) String() string {
	return enumString(expandWildcardsStrings[:], int(e))
}

func enumString(table []string, i int) string {
	if i < 0 || i >= len(table) {
		return strconv.Itoa(i)
	}
	return table[i]
}
