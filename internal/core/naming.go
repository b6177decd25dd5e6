package core

import (
	"fmt"
	"path/filepath"
	"strings"
)

const outputExt = ".stl"

var pathSeparatorReplacer = strings.NewReplacer("/", "_", "\\", "_")

// OutputFileName returns "{index}_{name}-{variant}.stl" with path separators
// in the name replaced by underscores.
func OutputFileName(job Job, variant Variant) string {
	name := pathSeparatorReplacer.Replace(job.Name)
	return fmt.Sprintf("%d_%s-%s%s", job.Index, name, variant.Suffix(), outputExt)
}

// OutputPath joins outDir and the job's output file name.
func OutputPath(outDir string, job Job, variant Variant) string {
	return filepath.Join(outDir, OutputFileName(job, variant))
}
