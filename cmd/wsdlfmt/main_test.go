package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testWSDL = `<definitions xmlns="http://schemas.xmlsoap.org/wsdl/" xmlns:soap="http://schemas.xmlsoap.org/wsdl/soap/" xmlns:tns="urn:calc" name="Calc" targetNamespace="urn:calc">
<types><schema xmlns="http://www.w3.org/2001/XMLSchema" targetNamespace="urn:calc"><element name="Add"/><complexType name="Pair"/></schema></types>
<message name="AddIn"/>
<portType name="CalcPort"><operation name="Add"><input message="tns:AddIn"/><output message="tns:AddIn"/></operation></portType>
<binding name="CalcSoap" type="tns:CalcPort"><soap:binding style="document"/><operation name="Add"/></binding>
<service name="Calc"><port name="CalcSoap" binding="tns:CalcSoap"><soap:address location="http://example.com/calc"/></port></service>
</definitions>`

func writeTemp(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func runCmd(args ...string) (int, string, string) {
	var stdout, stderr bytes.Buffer
	code := runWithArgs(args, &stdout, &stderr)
	return code, stdout.String(), stderr.String()
}

func TestFmt(t *testing.T) {
	path := writeTemp(t, "calc.wsdl", testWSDL)
	code, out, errOut := runCmd("fmt", path)
	require.Equal(t, 0, code, errOut)
	assert.True(t, strings.HasPrefix(out, "<?xml"))
	assert.Contains(t, out, `<soap:address location="http://example.com/calc">`)
}

func TestFmtIndent(t *testing.T) {
	path := writeTemp(t, "calc.wsdl", testWSDL)
	code, out, errOut := runCmd("fmt", "--indent", "  ", path)
	require.Equal(t, 0, code, errOut)
	assert.Contains(t, out, "\n  <types>")

	t.Setenv("WSDLFMT_INDENT", "\t")
	code, out, errOut = runCmd("fmt", path)
	require.Equal(t, 0, code, errOut)
	assert.Contains(t, out, "\n\t<types>")

	code, _, errOut = runCmd("fmt", "--indent", "xx", path)
	assert.Equal(t, 2, code)
	assert.Contains(t, errOut, "indent")
}

func TestFmtConfigFile(t *testing.T) {
	path := writeTemp(t, "calc.wsdl", testWSDL)
	cfg := writeTemp(t, "wsdlfmt.yaml", "indent: \"    \"\n")
	code, out, errOut := runCmd("--config", cfg, "fmt", path)
	require.Equal(t, 0, code, errOut)
	assert.Contains(t, out, "\n    <types>")
}

func TestFmtOutputFile(t *testing.T) {
	path := writeTemp(t, "calc.wsdl", testWSDL)
	dst := filepath.Join(t.TempDir(), "out.wsdl")
	code, out, errOut := runCmd("fmt", "-o", dst, path)
	require.Equal(t, 0, code, errOut)
	assert.Empty(t, out)
	data, err := os.ReadFile(dst)
	require.NoError(t, err)
	assert.Contains(t, string(data), "CalcSoap")
}

func TestFmtSchema(t *testing.T) {
	path := writeTemp(t, "t.xsd", `<xs:schema xmlns:xs="http://www.w3.org/2001/XMLSchema"><xs:element name="e"/></xs:schema>`)
	code, out, errOut := runCmd("fmt", "--schema", path)
	require.Equal(t, 0, code, errOut)
	assert.Contains(t, out, `<xs:element name="e">`)

	code, _, errOut = runCmd("fmt", path)
	assert.Equal(t, 1, code)
	assert.Contains(t, errOut, "unknown-type")
}

func TestOutline(t *testing.T) {
	path := writeTemp(t, "calc.wsdl", testWSDL)
	code, out, errOut := runCmd("outline", path)
	require.Equal(t, 0, code, errOut)
	for _, want := range []string{
		"name: Calc",
		"- element Add",
		"- complexType Pair",
		"flow: request-response",
		"protocol: soap",
		"{urn:calc}CalcPort",
		"location: http://example.com/calc",
	} {
		assert.Contains(t, out, want)
	}
}

func TestDebugLogging(t *testing.T) {
	path := writeTemp(t, "calc.wsdl", testWSDL)
	code, _, errOut := runCmd("--debug", "--pretty=false", "fmt", path)
	require.Equal(t, 0, code, errOut)
	assert.Contains(t, errOut, `"message":"formatted"`)
}

func TestUsageErrors(t *testing.T) {
	code, _, errOut := runCmd("fmt")
	assert.Equal(t, 2, code)
	assert.Contains(t, errOut, "accepts 1 arg")

	code, _, _ = runCmd("fmt", "--bogus", "x")
	assert.Equal(t, 2, code)

	code, _, errOut = runCmd("outline", filepath.Join(t.TempDir(), "missing.wsdl"))
	assert.Equal(t, 1, code)
	assert.Contains(t, errOut, "missing.wsdl")
}
