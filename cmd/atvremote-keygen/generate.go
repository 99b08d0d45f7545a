package main

import (
	"strings"
	"text/template"
)

// goConstName converts "DPAD_UP" to "KeyCodeDpadUp".
func goConstName(typeName, keyName string) string {
	var b strings.Builder
	b.WriteString(typeName)
	for _, part := range strings.Split(keyName, "_") {
		if part == "" {
			continue
		}
		b.WriteString(part[:1])
		b.WriteString(strings.ToLower(part[1:]))
	}
	return b.String()
}

type genData struct {
	Source  string
	Package string
	Type    string
	Codes   []genCode
}

type genCode struct {
	Ident string
	Name  string
	Value int32
	Desc  string
}

var keyCodeTmpl = template.Must(template.New("keycodes").Parse(
	`// Code generated by atvremote-keygen from {{.Source}}. DO NOT EDIT.

package {{.Package}}

// {{.Type}} is an Android key code sent in RemoteKeyInject.
type {{.Type}} int32

const (
{{- range .Codes}}
	{{.Ident}} {{$.Type}} = {{.Value}}
{{- end}}
)

// keyCodeTable lists every known key code with its protocol name.
var keyCodeTable = [...]struct {
	code {{.Type}}
	name string
	desc string
}{
{{- range .Codes}}
	{ {{- .Ident}}, {{printf "%q" .Name}}, {{printf "%q" .Desc}}},
{{- end}}
}
`))

// Generate renders the Go source for table. source names the YAML file in
// the generated header.
func Generate(table *RawKeyTable, source string) (string, error) {
	data := genData{
		Source:  source,
		Package: table.Package,
		Type:    table.Type,
	}
	for _, c := range table.Codes {
		data.Codes = append(data.Codes, genCode{
			Ident: goConstName(table.Type, c.Name),
			Name:  c.Name,
			Value: c.Value,
			Desc:  c.Description,
		})
	}

	var b strings.Builder
	if err := keyCodeTmpl.Execute(&b, data); err != nil {
		return "", err
	}
	return b.String(), nil
}
