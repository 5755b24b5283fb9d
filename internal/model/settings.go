package model

import (
	"os"
	"strings"
)

// Field identifies one of the six values of the settings record
type Field int

const (
	FieldBitsThreshold Field = iota
	FieldModelPath
	FieldSequencesDir
	FieldAnnotationsDir
	FieldResultsDir
	FieldFPSFile
)

// FieldKind tells the form which picker, if any, serves a field
type FieldKind int

const (
	KindText FieldKind = iota
	KindFile
	KindDirectory
)

// Fields lists all settings fields in form order
var Fields = []Field{
	FieldBitsThreshold,
	FieldModelPath,
	FieldSequencesDir,
	FieldAnnotationsDir,
	FieldResultsDir,
	FieldFPSFile,
}

// Key returns the JSON key the field is persisted under
func (f Field) Key() string {
	switch f {
	case FieldBitsThreshold:
		return "bits_threshold"
	case FieldModelPath:
		return "model_path"
	case FieldSequencesDir:
		return "sequences_dir"
	case FieldAnnotationsDir:
		return "annotations_dir"
	case FieldResultsDir:
		return "results_dir"
	case FieldFPSFile:
		return "fps_file"
	default:
		return ""
	}
}

// String returns the English label shown next to the field
func (f Field) String() string {
	switch f {
	case FieldBitsThreshold:
		return "Bits Threshold"
	case FieldModelPath:
		return "Model Path"
	case FieldSequencesDir:
		return "Sequences Directory"
	case FieldAnnotationsDir:
		return "Annotations Directory"
	case FieldResultsDir:
		return "Results Directory"
	case FieldFPSFile:
		return "FPS File"
	default:
		return "Unknown"
	}
}

// Kind returns the picker kind for the field
func (f Field) Kind() FieldKind {
	switch f {
	case FieldModelPath, FieldFPSFile:
		return KindFile
	case FieldSequencesDir, FieldAnnotationsDir, FieldResultsDir:
		return KindDirectory
	default:
		return KindText
	}
}

// Settings is the record persisted between launches. All values are kept
// as entered; the threshold is passed to the tracker verbatim.
type Settings struct {
	BitsThreshold  string `json:"bits_threshold"`
	ModelPath      string `json:"model_path"`
	SequencesDir   string `json:"sequences_dir"`
	AnnotationsDir string `json:"annotations_dir"`
	ResultsDir     string `json:"results_dir"`
	FPSFile        string `json:"fps_file"`
}

// Get returns the value of a field
func (s *Settings) Get(f Field) string {
	switch f {
	case FieldBitsThreshold:
		return s.BitsThreshold
	case FieldModelPath:
		return s.ModelPath
	case FieldSequencesDir:
		return s.SequencesDir
	case FieldAnnotationsDir:
		return s.AnnotationsDir
	case FieldResultsDir:
		return s.ResultsDir
	case FieldFPSFile:
		return s.FPSFile
	default:
		return ""
	}
}

// Set assigns the value of a field
func (s *Settings) Set(f Field, value string) {
	switch f {
	case FieldBitsThreshold:
		s.BitsThreshold = value
	case FieldModelPath:
		s.ModelPath = value
	case FieldSequencesDir:
		s.SequencesDir = value
	case FieldAnnotationsDir:
		s.AnnotationsDir = value
	case FieldResultsDir:
		s.ResultsDir = value
	case FieldFPSFile:
		s.FPSFile = value
	}
}

// Missing returns the fields holding an empty string, in form order
func (s *Settings) Missing() []Field {
	var missing []Field
	for _, f := range Fields {
		if s.Get(f) == "" {
			missing = append(missing, f)
		}
	}
	return missing
}

// Complete reports whether every field is non-empty
func (s *Settings) Complete() bool {
	return len(s.Missing()) == 0
}

// IsZero reports whether no field has been set
func (s *Settings) IsZero() bool {
	return *s == Settings{}
}

// NormalizeDir makes sure a chosen directory ends with a path separator.
// Both the native separator and '/' are accepted as already terminated.
func NormalizeDir(dir string) string {
	if dir == "" {
		return dir
	}
	if strings.HasSuffix(dir, string(os.PathSeparator)) || strings.HasSuffix(dir, "/") {
		return dir
	}
	return dir + string(os.PathSeparator)
}
