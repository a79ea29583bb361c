package main

import (
	"encoding/xml"
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/jacoelho/wsdl"
	"github.com/jacoelho/wsdl/xsd"
)

type outline struct {
	Name            string            `yaml:"name,omitempty"`
	TargetNamespace string            `yaml:"targetNamespace,omitempty"`
	Imports         []string          `yaml:"imports,omitempty"`
	Schemas         []schemaOutline   `yaml:"schemas,omitempty"`
	Messages        []string          `yaml:"messages,omitempty"`
	PortTypes       []portTypeOutline `yaml:"portTypes,omitempty"`
	Bindings        []bindingOutline  `yaml:"bindings,omitempty"`
	Services        []serviceOutline  `yaml:"services,omitempty"`
}

type schemaOutline struct {
	TargetNamespace string   `yaml:"targetNamespace,omitempty"`
	Items           []string `yaml:"items,omitempty"`
}

type portTypeOutline struct {
	Name       string             `yaml:"name"`
	Operations []operationOutline `yaml:"operations,omitempty"`
}

type operationOutline struct {
	Name string `yaml:"name"`
	Flow string `yaml:"flow"`
}

type bindingOutline struct {
	Name       string   `yaml:"name"`
	Type       string   `yaml:"type,omitempty"`
	Protocol   string   `yaml:"protocol,omitempty"`
	Operations []string `yaml:"operations,omitempty"`
}

type serviceOutline struct {
	Name  string        `yaml:"name"`
	Ports []portOutline `yaml:"ports,omitempty"`
}

type portOutline struct {
	Name     string `yaml:"name"`
	Binding  string `yaml:"binding,omitempty"`
	Location string `yaml:"location,omitempty"`
}

func (a *app) newOutlineCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "outline <document>",
		Short: "Print a YAML summary of a service description",
		Args:  exactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) (err error) {
			in, err := a.open(args[0])
			if err != nil {
				return err
			}
			defer func() {
				if closeErr := in.Close(); closeErr != nil && err == nil {
					err = fmt.Errorf("close %s: %w", args[0], closeErr)
				}
			}()
			sd, err := wsdl.ReadWithOptions(in, wsdl.NewReadOptions().WithLogger(a.log))
			if err != nil {
				return fmt.Errorf("read %s: %w", args[0], err)
			}
			enc := yaml.NewEncoder(a.stdout)
			enc.SetIndent(2)
			if err := enc.Encode(outlineOf(sd)); err != nil {
				return fmt.Errorf("encode outline: %w", err)
			}
			return enc.Close()
		},
	}
}

func outlineOf(sd *wsdl.ServiceDescription) outline {
	o := outline{Name: sd.Name, TargetNamespace: sd.TargetNamespace}
	for _, imp := range sd.Imports {
		o.Imports = append(o.Imports, imp.Namespace)
	}
	if sd.Types != nil {
		for _, s := range sd.Types.Schemas {
			o.Schemas = append(o.Schemas, schemaOutline{TargetNamespace: s.TargetNamespace, Items: schemaItems(s)})
		}
	}
	for _, m := range sd.Messages {
		o.Messages = append(o.Messages, m.Name)
	}
	for _, pt := range sd.PortTypes {
		out := portTypeOutline{Name: pt.Name}
		for _, op := range pt.Operations {
			out.Operations = append(out.Operations, operationOutline{Name: op.Name, Flow: op.Flow().String()})
		}
		o.PortTypes = append(o.PortTypes, out)
	}
	for _, b := range sd.Bindings {
		out := bindingOutline{Name: b.Name, Type: clark(b.Type), Protocol: protocol(b.Extensions)}
		for _, op := range b.Operations {
			out.Operations = append(out.Operations, op.Name)
		}
		o.Bindings = append(o.Bindings, out)
	}
	for _, svc := range sd.Services {
		out := serviceOutline{Name: svc.Name}
		for _, p := range svc.Ports {
			out.Ports = append(out.Ports, portOutline{Name: p.Name, Binding: clark(p.Binding), Location: location(p.Extensions)})
		}
		o.Services = append(o.Services, out)
	}
	return o
}

func schemaItems(s *xsd.Schema) []string {
	var items []string
	for _, item := range s.Items {
		switch v := item.(type) {
		case *xsd.Element:
			items = append(items, "element "+v.Name)
		case *xsd.ComplexType:
			items = append(items, "complexType "+v.Name)
		case *xsd.SimpleType:
			items = append(items, "simpleType "+v.Name)
		case *xsd.Attribute:
			items = append(items, "attribute "+v.Name)
		case *xsd.AttributeGroup:
			items = append(items, "attributeGroup "+v.Name)
		case *xsd.Group:
			items = append(items, "group "+v.Name)
		case *xsd.Notation:
			items = append(items, "notation "+v.Name)
		}
	}
	return items
}

func protocol(exts []wsdl.Extension) string {
	for _, e := range exts {
		switch e.(type) {
		case *wsdl.SoapBinding:
			return "soap"
		case *wsdl.Soap12Binding:
			return "soap12"
		case *wsdl.HTTPBinding:
			return "http"
		}
	}
	return ""
}

func location(exts []wsdl.Extension) string {
	for _, e := range exts {
		switch v := e.(type) {
		case *wsdl.SoapAddressBinding:
			return v.Location
		case *wsdl.Soap12AddressBinding:
			return v.Location
		case *wsdl.HTTPAddressBinding:
			return v.Location
		}
	}
	return ""
}

func clark(n xml.Name) string {
	if n.Space == "" {
		return n.Local
	}
	return "{" + n.Space + "}" + n.Local
}
