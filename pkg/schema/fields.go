package schema

// FieldKind identifies the concrete type of a Field.
type FieldKind int

const (
	KindString FieldKind = iota
	KindNumber
	KindBool
	KindObject
	KindArray
	KindUnion
	KindMedia
)

func (k FieldKind) String() string {
	return []string{"string", "number", "bool", "object", "array", "union", "media"}[k]
}

// Field describes the shape of a single document field. Implementations form
// a closed set; Validate dispatches on Kind rather than reflection.
type Field interface {
	Kind() FieldKind
	IsOptional() bool
}

// StringField is a bounded string.
type StringField struct {
	MaxLen   int
	Optional bool
}

func (f StringField) Kind() FieldKind  { return KindString }
func (f StringField) IsOptional() bool { return f.Optional }

// NumberField accepts any JSON number.
type NumberField struct {
	Optional bool
}

func (f NumberField) Kind() FieldKind  { return KindNumber }
func (f NumberField) IsOptional() bool { return f.Optional }

// BoolField accepts a JSON boolean.
type BoolField struct {
	Optional bool
}

func (f BoolField) Kind() FieldKind  { return KindBool }
func (f BoolField) IsOptional() bool { return f.Optional }

// ObjectField is a nested object with its own named fields.
type ObjectField struct {
	Fields   map[string]Field
	Optional bool
}

func (f ObjectField) Kind() FieldKind  { return KindObject }
func (f ObjectField) IsOptional() bool { return f.Optional }

// ArrayField holds zero or more elements of a single shape.
type ArrayField struct {
	Element  Field
	Optional bool
}

func (f ArrayField) Kind() FieldKind  { return KindArray }
func (f ArrayField) IsOptional() bool { return f.Optional }

// UnionField accepts the first alternative that validates.
type UnionField struct {
	Alternatives []Field
	Optional     bool
}

func (f UnionField) Kind() FieldKind  { return KindUnion }
func (f UnionField) IsOptional() bool { return f.Optional }

// MediaField is an embedded media reference: {id?, url, alt}. It renders as
// a media-library picker in the admin UI instead of free-text inputs.
type MediaField struct {
	Optional bool
}

func (f MediaField) Kind() FieldKind  { return KindMedia }
func (f MediaField) IsOptional() bool { return f.Optional }

// AsObject returns the object shape of a media reference. Validation treats
// a MediaField exactly like this object.
func (f MediaField) AsObject() ObjectField {
	return ObjectField{
		Fields: map[string]Field{
			"id":  StringField{MaxLen: 100, Optional: true},
			"url": StringField{MaxLen: 500},
			"alt": StringField{MaxLen: 500},
		},
		Optional: f.Optional,
	}
}

// Schema is the field specification of one content type.
type Schema struct {
	Name   string
	Fields map[string]Field
}
