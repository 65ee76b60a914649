package dom

import "time"

// AnyKind identifies the concrete kind of an Any value.
type AnyKind int

// Any value kinds.
const (
	AnyNull AnyKind = iota
	AnyBoolean
	AnyInteger
	AnyLong
	AnyFloat
	AnyDouble
	AnyString
	AnyPassword
	AnyByte
	AnyBinary
	AnyDate
	AnyDateTime
	AnyArray
	AnyObject
)

var anyKindNames = [...]string{
	AnyNull:     "null",
	AnyBoolean:  "boolean",
	AnyInteger:  "integer",
	AnyLong:     "long",
	AnyFloat:    "float",
	AnyDouble:   "double",
	AnyString:   "string",
	AnyPassword: "password",
	AnyByte:     "byte",
	AnyBinary:   "binary",
	AnyDate:     "date",
	AnyDateTime: "date-time",
	AnyArray:    "array",
	AnyObject:   "object",
}

func (k AnyKind) String() string {
	if k >= 0 && int(k) < len(anyKindNames) {
		return anyKindNames[k]
	}
	return "unknown"
}

// Any is a dynamically typed value. The union is closed.
type Any interface {
	AnyKind() AnyKind
	isAny()
}

type (
	// Null is the null value.
	Null struct{}
	// Boolean is a boolean primitive.
	Boolean bool
	// Integer is a 32-bit integer primitive.
	Integer int32
	// Long is a 64-bit integer primitive.
	Long int64
	// Float is a 32-bit floating point primitive.
	Float float32
	// Double is a 64-bit floating point primitive.
	Double float64
	// Password is a string primitive with format password.
	Password string
	// Byte holds bytes decoded from a base64 string.
	Byte []byte
	// Binary holds the UTF-8 bytes of a string.
	Binary []byte
	// Array is an ordered sequence of values.
	Array []Any
	// Object is an ordered sequence of named values.
	Object []Member
)

// String is a string primitive. Explicit records that the source text was
// written as an explicit string (quoted, block scalar, or tagged) rather than
// as a bare scalar whose type is open to inference.
type String struct {
	Value    string
	Explicit bool
}

// Date is a calendar date primitive.
type Date struct{ time.Time }

// DateTime is a timestamp primitive.
type DateTime struct{ time.Time }

// Member is one named value of an Object.
type Member struct {
	Name  string
	Value Any
}

func (Null) AnyKind() AnyKind     { return AnyNull }
func (Boolean) AnyKind() AnyKind  { return AnyBoolean }
func (Integer) AnyKind() AnyKind  { return AnyInteger }
func (Long) AnyKind() AnyKind     { return AnyLong }
func (Float) AnyKind() AnyKind    { return AnyFloat }
func (Double) AnyKind() AnyKind   { return AnyDouble }
func (String) AnyKind() AnyKind   { return AnyString }
func (Password) AnyKind() AnyKind { return AnyPassword }
func (Byte) AnyKind() AnyKind     { return AnyByte }
func (Binary) AnyKind() AnyKind   { return AnyBinary }
func (Date) AnyKind() AnyKind     { return AnyDate }
func (DateTime) AnyKind() AnyKind { return AnyDateTime }
func (Array) AnyKind() AnyKind    { return AnyArray }
func (Object) AnyKind() AnyKind   { return AnyObject }

func (Null) isAny()     {}
func (Boolean) isAny()  {}
func (Integer) isAny()  {}
func (Long) isAny()     {}
func (Float) isAny()    {}
func (Double) isAny()   {}
func (String) isAny()   {}
func (Password) isAny() {}
func (Byte) isAny()     {}
func (Binary) isAny()   {}
func (Date) isAny()     {}
func (DateTime) isAny() {}
func (Array) isAny()    {}
func (Object) isAny()   {}

// Str returns an implicit String.
func Str(v string) String { return String{Value: v} }

// ExplicitStr returns an explicit String.
func ExplicitStr(v string) String { return String{Value: v, Explicit: true} }

// Get returns the value of the first member named name.
func (o Object) Get(name string) (Any, bool) {
	for _, m := range o {
		if m.Name == name {
			return m.Value, true
		}
	}
	return nil, false
}

// Names returns member names in declaration order.
func (o Object) Names() []string {
	names := make([]string, len(o))
	for i, m := range o {
		names[i] = m.Name
	}
	return names
}

// IsNull reports whether v is absent or the null value.
func IsNull(v Any) bool {
	if v == nil {
		return true
	}
	_, ok := v.(Null)
	return ok
}
