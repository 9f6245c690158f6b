// Package transform implements the document processing pipeline: an ordered
// chain of Steps applied to template text for one company product.
package transform

import (
	"fmt"

	"git.home.luguber.info/inful/vendordocs/internal/config"
	derrors "git.home.luguber.info/inful/vendordocs/internal/errors"
)

// DocContext is handed unchanged to every step of a Processor run. Vendor and
// CompanyKey are the selector keys; the processor attaches them to step errors.
type DocContext struct {
	Vendor     string
	CompanyKey string
	Company    *config.Company
	Product    *config.Product
}

// Step transforms document text.
type Step interface {
	Transform(content string, dc *DocContext) (string, error)
}

// StepFunc adapts a plain function to the Step interface.
type StepFunc func(content string, dc *DocContext) (string, error)

// Transform calls f.
func (f StepFunc) Transform(content string, dc *DocContext) (string, error) {
	return f(content, dc)
}

// Processor applies its steps left to right, feeding each step's output to the next.
type Processor struct {
	steps []Step
}

// NewProcessor creates a processor with the given initial steps.
func NewProcessor(steps ...Step) *Processor {
	p := &Processor{steps: make([]Step, 0, len(steps))}
	for _, s := range steps {
		p.AddStep(s)
	}
	return p
}

// AddStep appends a step to the end of the chain. Nil steps are ignored.
func (p *Processor) AddStep(step Step) {
	if step == nil {
		return
	}
	p.steps = append(p.steps, step)
}

// Steps returns the registered steps in execution order.
func (p *Processor) Steps() []Step {
	out := make([]Step, len(p.steps))
	copy(out, p.steps)
	return out
}

// Process runs content through every step. The first failing step aborts the
// chain with a transform-category error naming it.
func (p *Processor) Process(content string, dc *DocContext) (string, error) {
	for i, step := range p.steps {
		out, err := step.Transform(content, dc)
		if err != nil {
			derr := derrors.TransformFailed(StepName(step), err).WithContext("index", i)
			if dc != nil {
				derr.WithContext("vendor", dc.Vendor).WithContext("company", dc.CompanyKey)
			}
			return "", derr
		}
		content = out
	}
	return content, nil
}

// StepName returns a human-readable name for a step. Steps may provide one via
// a Name() string method; otherwise the Go type is used.
func StepName(step Step) string {
	if n, ok := step.(interface{ Name() string }); ok {
		return n.Name()
	}
	return fmt.Sprintf("%T", step)
}
