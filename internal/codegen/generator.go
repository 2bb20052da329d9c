package codegen

import (
	"bytes"
	"fmt"
	"go/ast"
	"go/format"
	"go/parser"
	"go/token"
	"reflect"
	"strconv"
	"strings"
)

const (
	tagKey       = "crypt"
	tagEncrypted = "encrypted"
	tagPlain     = "plain"

	fieldsImport = "github.com/MKhiriev/go-field-crypt/internal/fields"
)

// Attribute is one exported struct attribute as seen by the generator.
type Attribute struct {
	Name      string
	Kind      string // "string", "*string" or "other"
	Encrypted bool
}

// Struct is a tagged struct and its exported attributes in declaration order.
type Struct struct {
	Name       string
	Attributes []Attribute
}

// Parse reads Go source and returns its package name and every struct type
// that carries at least one crypt tag.
func Parse(filename string, src []byte) (string, []Struct, error) {
	fset := token.NewFileSet()
	file, err := parser.ParseFile(fset, filename, src, parser.SkipObjectResolution)
	if err != nil {
		return "", nil, fmt.Errorf("parse %s: %w", filename, err)
	}

	var structs []Struct
	for _, decl := range file.Decls {
		gen, ok := decl.(*ast.GenDecl)
		if !ok || gen.Tok != token.TYPE {
			continue
		}

		for _, spec := range gen.Specs {
			ts := spec.(*ast.TypeSpec)
			st, ok := ts.Type.(*ast.StructType)
			if !ok || ts.TypeParams != nil {
				continue
			}

			s, tagged, err := parseStruct(fset, ts.Name.Name, st)
			if err != nil {
				return "", nil, err
			}
			if tagged {
				structs = append(structs, s)
			}
		}
	}

	if len(structs) == 0 {
		return "", nil, fmt.Errorf("%s: %w", filename, ErrNoTaggedStructs)
	}

	return file.Name.Name, structs, nil
}

func parseStruct(fset *token.FileSet, name string, st *ast.StructType) (Struct, bool, error) {
	s := Struct{Name: name}
	tagged := false

	for _, field := range st.Fields.List {
		value, hasTag, err := cryptTag(field)
		if err != nil {
			return Struct{}, false, fmt.Errorf("%s: %s: %w", fset.Position(field.Pos()), name, err)
		}
		tagged = tagged || hasTag

		kind := kindOf(field.Type)
		if hasTag && kind == "other" {
			return Struct{}, false, fmt.Errorf("%s: %s: %w (%s)",
				fset.Position(field.Pos()), name, ErrMisplacedTag, exprString(field.Type))
		}

		// embedded attributes have no name of their own
		for _, ident := range field.Names {
			if !ident.IsExported() {
				continue
			}
			s.Attributes = append(s.Attributes, Attribute{
				Name:      ident.Name,
				Kind:      kind,
				Encrypted: value == tagEncrypted,
			})
		}
	}

	return s, tagged, nil
}

func cryptTag(field *ast.Field) (string, bool, error) {
	if field.Tag == nil {
		return "", false, nil
	}

	raw, err := strconv.Unquote(field.Tag.Value)
	if err != nil {
		return "", false, err
	}

	value, ok := reflect.StructTag(raw).Lookup(tagKey)
	if !ok {
		return "", false, nil
	}

	switch value {
	case tagEncrypted, tagPlain:
		return value, true, nil
	default:
		return "", false, fmt.Errorf("%w %q", ErrUnknownTagValue, value)
	}
}

func kindOf(expr ast.Expr) string {
	switch t := expr.(type) {
	case *ast.Ident:
		if t.Name == "string" {
			return "string"
		}
	case *ast.StarExpr:
		if ident, ok := t.X.(*ast.Ident); ok && ident.Name == "string" {
			return "*string"
		}
	}
	return "other"
}

func exprString(expr ast.Expr) string {
	var buf bytes.Buffer
	if err := format.Node(&buf, token.NewFileSet(), expr); err != nil {
		return "?"
	}
	return buf.String()
}

// Render writes the generated file for structs of package pkg.
func Render(pkg string, structs []Struct) ([]byte, error) {
	var b strings.Builder

	b.WriteString("// Code generated by fieldcrypt gen. DO NOT EDIT.\n\n")
	fmt.Fprintf(&b, "package %s\n\n", pkg)
	fmt.Fprintf(&b, "import %q\n", fieldsImport)

	for _, s := range structs {
		fmt.Fprintf(&b, "\n// Fields describes the attributes of %s.\n", s.Name)
		fmt.Fprintf(&b, "func (x *%s) Fields() []fields.Field {\n", s.Name)
		b.WriteString("return []fields.Field{\n")
		for _, a := range s.Attributes {
			b.WriteString(constructor(a))
			b.WriteString(",\n")
		}
		b.WriteString("}\n}\n")
	}

	out, err := format.Source([]byte(b.String()))
	if err != nil {
		return nil, fmt.Errorf("format generated source: %w", err)
	}

	return out, nil
}

func constructor(a Attribute) string {
	name := strconv.Quote(a.Name)

	switch {
	case a.Kind == "string" && a.Encrypted:
		return fmt.Sprintf("fields.Encrypted(%s, &x.%s)", name, a.Name)
	case a.Kind == "string":
		return fmt.Sprintf("fields.String(%s, &x.%s)", name, a.Name)
	case a.Kind == "*string" && a.Encrypted:
		return fmt.Sprintf("fields.EncryptedNullString(%s, &x.%s)", name, a.Name)
	case a.Kind == "*string":
		return fmt.Sprintf("fields.NullString(%s, &x.%s)", name, a.Name)
	default:
		return fmt.Sprintf("fields.Scalar(%s)", name)
	}
}

// Generate parses src and renders the Fields methods for it.
func Generate(filename string, src []byte) ([]byte, error) {
	pkg, structs, err := Parse(filename, src)
	if err != nil {
		return nil, err
	}

	return Render(pkg, structs)
}
