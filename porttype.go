package wsdl

import "encoding/xml"

// PortType is a wsdl:portType.
type PortType struct {
	Extensible
	Name       string
	Operations []*Operation
}

// Operation is an abstract operation of a port type.
type Operation struct {
	Extensible
	Name string
	// ParameterOrder is nil when the attribute is absent. An empty non-nil
	// slice writes an empty attribute.
	ParameterOrder []string
	Input          *OperationMessage
	Output         *OperationMessage
	Faults         []*OperationMessage
	// OutputFirst is set when output precedes input, which makes the
	// operation solicit-response instead of request-response. It is ignored
	// unless both Input and Output are set.
	OutputFirst bool
}

// OperationMessage is an input, output or fault of an operation.
type OperationMessage struct {
	Extensible
	Name    string
	Message xml.Name
}

// OperationFlow is the transmission primitive of an operation.
type OperationFlow int

const (
	FlowNone OperationFlow = iota
	FlowOneWay
	FlowRequestResponse
	FlowSolicitResponse
	FlowNotification
)

func (f OperationFlow) String() string {
	switch f {
	case FlowOneWay:
		return "one-way"
	case FlowRequestResponse:
		return "request-response"
	case FlowSolicitResponse:
		return "solicit-response"
	case FlowNotification:
		return "notification"
	default:
		return "none"
	}
}

// Flow derives the transmission primitive from the messages present.
func (op *Operation) Flow() OperationFlow {
	switch {
	case op.Input != nil && op.Output != nil && op.OutputFirst:
		return FlowSolicitResponse
	case op.Input != nil && op.Output != nil:
		return FlowRequestResponse
	case op.Input != nil:
		return FlowOneWay
	case op.Output != nil:
		return FlowNotification
	default:
		return FlowNone
	}
}
