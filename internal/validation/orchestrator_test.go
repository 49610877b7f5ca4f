package validation

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"driftgate/domain/artifact"
	"driftgate/internal"
	"driftgate/internal/config"
	"driftgate/internal/errors"
	"driftgate/internal/testkit"
)

type fixture struct {
	cfg config.DataValidationConfig
	in  artifact.IngestionArtifact
	dir string
}

// newFixture lays out a schema document and a train/test pair in a
// temp directory. Column f1 is identical across splits; f2 takes the
// current values passed in.
func newFixture(t *testing.T, currentF2 []float64) fixture {
	t.Helper()
	dir := t.TempDir()

	schemaPath := filepath.Join(dir, "schema.yaml")
	require.NoError(t, testkit.WriteSchemaDoc(schemaPath, []string{"f1", "f2"}))

	baseF1 := []float64{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}
	baseF2 := []float64{10, 20, 30, 40, 50, 60, 70, 80, 90, 100}

	trainPath := filepath.Join(dir, "train.csv")
	testPath := filepath.Join(dir, "test.csv")
	require.NoError(t, writeCSVColumns(trainPath, baseF1, baseF2))
	require.NoError(t, writeCSVColumns(testPath, baseF1, currentF2))

	cfg := config.DataValidationConfig{
		SchemaFilePath:      schemaPath,
		TrainFilePath:       trainPath,
		TestFilePath:        testPath,
		ValidTrainFilePath:  filepath.Join(dir, "validated", "train.csv"),
		ValidTestFilePath:   filepath.Join(dir, "validated", "test.csv"),
		DriftReportFilePath: filepath.Join(dir, "report", "drift.yaml"),
		DriftThreshold:      config.DefaultDriftThreshold,
	}

	return fixture{
		cfg: cfg,
		in:  artifact.IngestionArtifact{TrainFilePath: trainPath, TestFilePath: testPath},
		dir: dir,
	}
}

func writeCSVColumns(path string, f1, f2 []float64) error {
	lines := []string{"f1,f2"}
	for i := range f1 {
		lines = append(lines, fmt.Sprintf("%s,%s",
			strconv.FormatFloat(f1[i], 'g', -1, 64),
			strconv.FormatFloat(f2[i], 'g', -1, 64)))
	}
	return testkit.WriteCSVDoc(path, lines...)
}

func quietLogger() *internal.Logger {
	return internal.NewLogger(internal.LogLevelError)
}

func TestOrchestrator_HappyPath(t *testing.T) {
	fx := newFixture(t, []float64{10, 20, 30, 40, 50, 60, 70, 80, 90, 100})

	result, err := New(fx.cfg, quietLogger()).Run(fx.in)
	require.NoError(t, err)

	assert.True(t, result.ValidationStatus)
	assert.False(t, result.RunID.String() == "")
	assert.False(t, result.CreatedAt.IsZero())
	assert.Equal(t, fx.cfg.ValidTrainFilePath, result.ValidTrainFilePath)
	assert.Equal(t, fx.cfg.ValidTestFilePath, result.ValidTestFilePath)
	assert.Equal(t, fx.cfg.DriftReportFilePath, result.DriftReportFilePath)

	// All-or-nothing semantics: invalid splits are never produced
	assert.Empty(t, result.InvalidTrainFilePath)
	assert.Empty(t, result.InvalidTestFilePath)

	// Valid copies are byte-identical pass-throughs of the inputs
	in, err := os.ReadFile(fx.cfg.TrainFilePath)
	require.NoError(t, err)
	out, err := os.ReadFile(fx.cfg.ValidTrainFilePath)
	require.NoError(t, err)
	assert.Equal(t, in, out)

	report := readReport(t, fx.cfg.DriftReportFilePath)
	require.Contains(t, report, "f1")
	require.Contains(t, report, "f2")
	assert.Equal(t, 1.0, report["f1"].PValue)
	assert.False(t, report["f1"].DriftStatus)
}

func TestOrchestrator_DriftFailsRunButPersistsReport(t *testing.T) {
	// f2 shifted far away from the training distribution
	fx := newFixture(t, []float64{1010, 1020, 1030, 1040, 1050, 1060, 1070, 1080, 1090, 1100})

	result, err := New(fx.cfg, quietLogger()).Run(fx.in)
	require.NoError(t, err)

	assert.False(t, result.ValidationStatus)

	report := readReport(t, fx.cfg.DriftReportFilePath)
	assert.True(t, report["f2"].DriftStatus)
	assert.Less(t, report["f2"].PValue, fx.cfg.DriftThreshold)
	assert.False(t, report["f1"].DriftStatus)

	// Valid copies are still written: the report is for diagnosis,
	// the status verdict is for the caller.
	_, err = os.Stat(fx.cfg.ValidTestFilePath)
	require.NoError(t, err)
}

func TestOrchestrator_ColumnCountMismatchFailsFast(t *testing.T) {
	fx := newFixture(t, []float64{10, 20, 30, 40, 50, 60, 70, 80, 90, 100})

	// Train file grows an extra column the schema does not declare
	require.NoError(t, testkit.WriteCSVDoc(fx.in.TrainFilePath,
		"f1,f2,f3",
		"1,10,0",
		"2,20,0",
	))

	result, err := New(fx.cfg, quietLogger()).Run(fx.in)
	require.Error(t, err)
	assert.Nil(t, result)
	assert.True(t, errors.IsKind(err, errors.KindStructuralValidation))
	assert.Contains(t, err.Error(), "training data")

	// Fail-fast: drift detection never ran, so no report was written
	_, statErr := os.Stat(fx.cfg.DriftReportFilePath)
	assert.True(t, os.IsNotExist(statErr))
	_, statErr = os.Stat(fx.cfg.ValidTrainFilePath)
	assert.True(t, os.IsNotExist(statErr))
}

func TestOrchestrator_MissingRequiredColumn(t *testing.T) {
	fx := newFixture(t, []float64{10, 20, 30, 40, 50, 60, 70, 80, 90, 100})

	// Right column count, wrong name in the test split
	require.NoError(t, testkit.WriteCSVDoc(fx.in.TestFilePath,
		"f1,other",
		"1,10",
		"2,20",
	))

	_, err := New(fx.cfg, quietLogger()).Run(fx.in)
	require.Error(t, err)
	assert.True(t, errors.IsKind(err, errors.KindStructuralValidation))
	assert.Contains(t, err.Error(), "testing data")
	assert.Contains(t, err.Error(), "f2")
}

func TestOrchestrator_MissingInputFile(t *testing.T) {
	fx := newFixture(t, []float64{10, 20, 30, 40, 50, 60, 70, 80, 90, 100})
	fx.in.TrainFilePath = filepath.Join(fx.dir, "nope.csv")

	_, err := New(fx.cfg, quietLogger()).Run(fx.in)
	require.Error(t, err)
	assert.True(t, errors.IsKind(err, errors.KindTableRead))
	assert.Contains(t, err.Error(), "nope.csv")
}

func TestOrchestrator_MalformedSchema(t *testing.T) {
	fx := newFixture(t, []float64{10, 20, 30, 40, 50, 60, 70, 80, 90, 100})
	require.NoError(t, os.WriteFile(fx.cfg.SchemaFilePath, []byte("columns: {}\n"), 0o644))

	_, err := New(fx.cfg, quietLogger()).Run(fx.in)
	require.Error(t, err)
	assert.True(t, errors.IsKind(err, errors.KindSchemaLoad))
}

// TestOrchestrator_IdempotentOutputs re-runs a successful validation
// and expects byte-identical output files.
func TestOrchestrator_IdempotentOutputs(t *testing.T) {
	fx := newFixture(t, []float64{10, 20, 30, 40, 50, 60, 70, 80, 90, 100})
	orchestrator := New(fx.cfg, quietLogger())

	_, err := orchestrator.Run(fx.in)
	require.NoError(t, err)
	firstTrain, err := os.ReadFile(fx.cfg.ValidTrainFilePath)
	require.NoError(t, err)
	firstTest, err := os.ReadFile(fx.cfg.ValidTestFilePath)
	require.NoError(t, err)

	_, err = orchestrator.Run(fx.in)
	require.NoError(t, err)
	secondTrain, err := os.ReadFile(fx.cfg.ValidTrainFilePath)
	require.NoError(t, err)
	secondTest, err := os.ReadFile(fx.cfg.ValidTestFilePath)
	require.NoError(t, err)

	assert.Equal(t, firstTrain, secondTrain)
	assert.Equal(t, firstTest, secondTest)
}

type reportEntry struct {
	Statistic   float64 `yaml:"statistic"`
	PValue      float64 `yaml:"p_value"`
	DriftStatus bool    `yaml:"drift_status"`
}

func readReport(t *testing.T, path string) map[string]reportEntry {
	t.Helper()
	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	report := make(map[string]reportEntry)
	require.NoError(t, yaml.Unmarshal(raw, &report))
	return report
}
