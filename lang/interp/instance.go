package interp

import (
	"github.com/aspen-lang/aspen/lang/diag"
	"github.com/aspen-lang/aspen/lang/token"
	"github.com/dolthub/swiss"
)

// InstanceValue is an instance of a ClassValue. Fields are created lazily
// on first assignment and shadow methods of the same name on read.
type InstanceValue struct {
	Class  *ClassValue
	fields *swiss.Map[string, Value]
}

// NewInstance constructs a fresh, field-less instance of class.
func NewInstance(class *ClassValue) *InstanceValue {
	return &InstanceValue{Class: class, fields: swiss.NewMap[string, Value](4)}
}

// Get resolves a property read: a field takes priority, then a bound
// method walking the superclass chain, else an "Undefined property"
// runtime error naming the property and attributing it to tok.
func (i *InstanceValue) Get(tok token.Token) (Value, error) {
	if v, ok := i.fields.Get(tok.Lexeme); ok {
		return v, nil
	}
	if m, ok := i.Class.FindMethod(tok.Lexeme); ok {
		return m.Bind(i), nil
	}
	return nil, diag.AtToken(diag.Runtime, tok, "Undefined property '%s'.", tok.Lexeme)
}

// Set writes a field, creating it if absent.
func (i *InstanceValue) Set(name token.Token, v Value) {
	i.fields.Put(name.Lexeme, v)
}
