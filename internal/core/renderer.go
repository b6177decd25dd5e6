package core

import (
	"strconv"
	"strings"
)

const (
	DefaultBinary = "openscad"
	DefaultModel  = "bottle-clip.scad"
	DefaultOutDir = "out"
)

// Offset holds the layout compensation applied to names without descenders.
type Offset struct {
	LogoOffset float64 `mapstructure:"logo_offset" yaml:"logo_offset"`
	LogoSize   float64 `mapstructure:"logo_size" yaml:"logo_size"`
	TextOffset float64 `mapstructure:"offset_text" yaml:"offset_text"`
}

func DefaultOffset() Offset {
	return Offset{
		LogoOffset: -3.5,
		LogoSize:   1.15,
		TextOffset: -3.5,
	}
}

type RenderSettings struct {
	Binary string
	Model  string
	OutDir string
	Offset Offset
}

func DefaultRenderSettings() RenderSettings {
	return RenderSettings{
		Binary: DefaultBinary,
		Model:  DefaultModel,
		OutDir: DefaultOutDir,
		Offset: DefaultOffset(),
	}
}

type Invocation struct {
	Job        Job
	Variant    Variant
	OutputPath string
	Args       []string
}

// Command returns the full argv, binary first.
func (i Invocation) Command(binary string) []string {
	return append([]string{binary}, i.Args...)
}

func BuildInvocation(settings RenderSettings, job Job, variant Variant) Invocation {
	output := OutputPath(settings.OutDir, job, variant)

	args := []string{
		"-o", output,
		"-D", "name=" + QuoteString(job.Name),
		"-D", "do_main=" + strconv.FormatBool(variant.DoMain()),
		settings.Model,
	}
	if job.NeedsOffset {
		args = append(args, OffsetArgs(settings.Offset)...)
	}

	return Invocation{
		Job:        job,
		Variant:    variant,
		OutputPath: output,
		Args:       args,
	}
}

// BuildInvocations returns main then schrift for every job, in job order.
func BuildInvocations(settings RenderSettings, jobs []Job) []Invocation {
	invocations := make([]Invocation, 0, len(jobs)*len(Variants))
	for _, job := range jobs {
		for _, variant := range Variants {
			invocations = append(invocations, BuildInvocation(settings, job, variant))
		}
	}
	return invocations
}

func OffsetArgs(offset Offset) []string {
	return []string{
		"-D", "logo_offset=" + formatNumber(offset.LogoOffset),
		"-D", "logo_size=" + formatNumber(offset.LogoSize),
		"-D", "offset_text=" + formatNumber(offset.TextOffset),
	}
}

var scadStringEscaper = strings.NewReplacer(`\`, `\\`, `"`, `\"`)

// QuoteString renders s as an OpenSCAD string literal.
func QuoteString(s string) string {
	return `"` + scadStringEscaper.Replace(s) + `"`
}

func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
