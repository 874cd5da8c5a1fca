package gen

import (
	"bytes"
	"embed"
	"errors"
	"fmt"
	"go/ast"
	"go/parser"
	"go/token"
	"os"
	"path/filepath"
	"reflect"
	"strconv"
	"strings"
	"text/template"

	"github.com/samber/lo"
	"golang.org/x/tools/imports"
)

//go:embed template/*
var tplDir embed.FS

var ErrNoModels = errors.New("no model with a TableName method found")

// Field names that would clash with the generated Table, Columns and Query
// declarations.
var reserved = []string{"Table", "Columns", "Query"}

// Config controls where models are read from and where helpers are written.
type Config struct {
	// Glob of Go files holding the model structs
	Source string
	// Directory the generated files are written to
	Target string
	// Package clause of the generated files
	Package string
	// Import path of the builder package
	Import string
}

// NewConfig creates a Config with default values.
func NewConfig() *Config {
	return &Config{
		Source:  "./internal/model/*.go",
		Target:  "./gen/",
		Package: "gen",
		Import:  "github.com/maxshaw/qbuilder",
	}
}

// Validate checks if the configuration is usable.
func (c *Config) Validate() error {
	if c.Source == "" {
		return fmt.Errorf("source glob is required")
	}
	if c.Target == "" {
		return fmt.Errorf("target directory is required")
	}
	if !token.IsIdentifier(c.Package) {
		return fmt.Errorf("invalid package name %q", c.Package)
	}
	if c.Import == "" {
		return fmt.Errorf("builder import path is required")
	}
	return nil
}

type Field struct {
	Name, Column string
}

type Model struct {
	Name, Table string
	Fields      []Field
}

// Columns returns the column names of m in declaration order.
func (m Model) Columns() []string {
	return lo.Map(m.Fields, func(f Field, _ int) string { return f.Column })
}

// Gen parses every model matched by cfg.Source and writes one helper file per
// model into cfg.Target.
func Gen(cfg *Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}

	t, err := template.New("gen").Funcs(template.FuncMap{
		"join": strings.Join,
	}).ParseFS(tplDir, "template/*.tmpl")
	if err != nil {
		return err
	}

	files, err := filepath.Glob(cfg.Source)
	if err != nil {
		return err
	}

	var models []Model
	for _, file := range files {
		src, err := os.ReadFile(file)
		if err != nil {
			return err
		}

		found, err := Models(src, file)
		if err != nil {
			return err
		}
		models = append(models, found...)
	}

	if len(models) == 0 {
		return ErrNoModels
	}

	if err := os.MkdirAll(cfg.Target, 0o755); err != nil {
		return err
	}

	for _, m := range models {
		name := filepath.Join(cfg.Target, strings.ToLower(m.Name)+"_table.go")
		if err := execTpl(t, name, cfg, m); err != nil {
			return fmt.Errorf("[%s] %w", m.Name, err)
		}
	}

	return nil
}

func execTpl(t *template.Template, filename string, cfg *Config, m Model) error {
	var out bytes.Buffer
	err := t.ExecuteTemplate(&out, "table.tmpl", map[string]any{
		"Package": cfg.Package,
		"Import":  cfg.Import,
		"Name":    m.Name,
		"Table":   m.Table,
		"Fields":  m.Fields,
		"Columns": lo.Map(m.Columns(), func(c string, _ int) string { return strconv.Quote(c) }),
	})
	if err != nil {
		return err
	}

	src, err := imports.Process(filename, out.Bytes(), &imports.Options{
		Comments:   true,
		TabIndent:  true,
		TabWidth:   8,
		FormatOnly: true,
	})
	if err != nil {
		return fmt.Errorf("format generated source: %w", err)
	}

	return os.WriteFile(filename, src, 0o644)
}

// Models returns the models declared in src. A struct counts as a model when
// it has a TableName method returning string.
func Models(src []byte, filename string) ([]Model, error) {
	fset := token.NewFileSet()

	f, err := parser.ParseFile(fset, filename, src, parser.ParseComments)
	if err != nil {
		return nil, err
	}

	var (
		structs = make(map[string]*ast.StructType)
		order   []string
		tables  = make(map[string]string)
	)

	for _, decl := range f.Decls {
		switch d := decl.(type) {
		case *ast.GenDecl:
			for _, spec := range d.Specs {
				if ts, ok := spec.(*ast.TypeSpec); ok {
					if st, ok := ts.Type.(*ast.StructType); ok {
						structs[ts.Name.Name] = st
						order = append(order, ts.Name.Name)
					}
				}
			}

		case *ast.FuncDecl:
			if d.Name.Name == "TableName" && firstFieldName(d.Type.Results) == "string" {
				if recv := receiverName(d.Recv); recv != "" {
					tables[recv] = tableLiteral(d.Body)
				}
			}
		}
	}

	var models []Model
	for _, name := range lo.Uniq(order) {
		table, ok := tables[name]
		if !ok {
			continue
		}
		if table == "" {
			table = strings.ToLower(name)
		}

		fields := parseFields(structs[name])
		if clash, ok := lo.Find(fields, func(f Field) bool { return lo.Contains(reserved, f.Name) }); ok {
			return nil, fmt.Errorf("[%s.%s] field name clashes with a generated declaration", name, clash.Name)
		}

		models = append(models, Model{Name: name, Table: table, Fields: fields})
	}

	return models, nil
}

func parseFields(st *ast.StructType) []Field {
	var fields []Field

	for _, sf := range st.Fields.List {
		for _, ident := range sf.Names {
			if !ident.IsExported() {
				continue
			}

			f := Field{Name: ident.Name}

			if sf.Tag != nil {
				tag := reflect.StructTag(strings.Trim(sf.Tag.Value, "`")).Get("db")
				if tag == "-" {
					continue
				}
				f.Column = strings.SplitN(tag, ";", 2)[0]
			}

			if f.Column == "" {
				f.Column = strings.ToLower(f.Name)
			}

			if _, dup := lo.Find(fields, func(e Field) bool { return e.Column == f.Column }); dup {
				continue
			}

			fields = append(fields, f)
		}
	}

	return fields
}

// tableLiteral returns the string a TableName body returns, when the body is a
// single return of a string literal.
func tableLiteral(body *ast.BlockStmt) string {
	if body == nil || len(body.List) != 1 {
		return ""
	}

	ret, ok := body.List[0].(*ast.ReturnStmt)
	if !ok || len(ret.Results) != 1 {
		return ""
	}

	lit, ok := ret.Results[0].(*ast.BasicLit)
	if !ok || lit.Kind != token.STRING {
		return ""
	}

	s, err := strconv.Unquote(lit.Value)
	if err != nil {
		return ""
	}
	return s
}

func firstFieldName(l *ast.FieldList) string {
	if l.NumFields() > 0 {
		if id, ok := l.List[0].Type.(*ast.Ident); ok {
			return id.Name
		}
	}
	return ""
}

func receiverName(l *ast.FieldList) string {
	if l.NumFields() == 0 {
		return ""
	}

	typ := l.List[0].Type
	if star, ok := typ.(*ast.StarExpr); ok {
		typ = star.X
	}

	if id, ok := typ.(*ast.Ident); ok {
		return id.Name
	}
	return ""
}
