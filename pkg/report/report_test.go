package report

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/natural-bodybuilder/macromix/pkg/constraint"
	"github.com/natural-bodybuilder/macromix/pkg/errors"
	"github.com/natural-bodybuilder/macromix/pkg/header"
	"github.com/natural-bodybuilder/macromix/pkg/nutrient"
	"github.com/natural-bodybuilder/macromix/pkg/optimizer"
	"github.com/natural-bodybuilder/macromix/pkg/projection"
	"github.com/natural-bodybuilder/macromix/pkg/target"
)

func tofuRun(t *testing.T, opts ...Option) *Report {
	t.Helper()
	catalog, err := nutrient.NewCatalog(
		nutrient.Ingredient{Name: "tofu", Grams: 100, Kcal: 200, Carb: 10, Fat: 10, Protein: 30},
		nutrient.Ingredient{Name: "sugar", Grams: 100, Kcal: 400, Carb: 100},
	)
	require.NoError(t, err)

	tgt := target.Target{Kcal: 600, Carb: 20, Fat: 20, Protein: 60,
		ConstraintExact: []target.Constraint{{Name: "sugar", Grams: 0}}}
	cons, err := constraint.Resolve(tgt, catalog, 3)
	require.NoError(t, err)

	res, err := optimizer.New(optimizer.WithSteps(3)).Optimize(context.Background(), tgt.Normalize(), cons, catalog)
	require.NoError(t, err)
	m, err := projection.Project(res.Proposal, tgt.Kcal, catalog)
	require.NoError(t, err)

	opts = append([]Option{WithConstraints(cons), WithResult(res, m)}, opts...)
	return New(header.KindMixReport, "v1.2.3", tgt, catalog, opts...)
}

func TestNew(t *testing.T) {
	r := tofuRun(t)

	assert.Equal(t, header.KindMixReport, r.Kind)
	assert.Equal(t, "macromix.io/v1", r.APIVersion)
	assert.Equal(t, "v1.2.3", r.Metadata[header.MetadataVersion])
	assert.NotEmpty(t, r.RunID())

	require.Len(t, r.Ingredients, 2)
	assert.Equal(t, "sugar", r.Ingredients[0].Name)
	assert.InDelta(t, 0.25, r.Ingredients[0].Normalized.Carb, 1e-12)

	assert.Equal(t, map[string]int{"sugar": 0, "tofu": 3}, r.Proposal)
	require.NotNil(t, r.Search)
	assert.Equal(t, 3, r.Search.Steps)
	assert.Equal(t, 3, r.Search.Iterations)
	assert.InDelta(t, 0, r.Search.Cost, 1e-12)
	assert.Equal(t, 300, r.Mixture.Grams()["tofu"])
	assert.Nil(t, r.Amounts)
}

func TestNew_Unit(t *testing.T) {
	r := tofuRun(t, WithUnit(projection.UnitKilogram))
	assert.Equal(t, projection.UnitKilogram, r.Unit)
	assert.InDelta(t, 0.3, r.Amounts["tofu"], 1e-12)
}

func TestWrite_JSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(context.Background(), &buf, "json", tofuRun(t)))

	var doc map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &doc))
	assert.Equal(t, "MixReport", doc["kind"])
	assert.Equal(t, "macromix.io/v1", doc["apiVersion"])
	assert.Equal(t, map[string]any{"sugar": 0.0, "tofu": 3.0}, doc["proposal"])

	ings, ok := doc["ingredients"].([]any)
	require.True(t, ok)
	first, ok := ings[0].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "sugar", first["name"], "ingredient fields are inlined")
}

func TestWrite_YAML(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(context.Background(), &buf, "yaml", tofuRun(t)))

	var doc map[string]any
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &doc))
	assert.Equal(t, "MixReport", doc["kind"])
	mixture, ok := doc["mixture"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, 20, mixture["carb_percent"])
}

func TestWrite_Table(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(context.Background(), &buf, "table", tofuRun(t, WithUnit(projection.UnitKilogram))))

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 7)
	assert.Equal(t, []string{"INGREDIENT", "PIECES", "KCAL", "G", "AMOUNT"}, strings.Fields(lines[0]))
	assert.Equal(t, []string{"sugar", "0", "0", "0", "0.00", "kg"}, strings.Fields(lines[2]))
	assert.Equal(t, []string{"tofu", "3", "600", "300", "0.30", "kg"}, strings.Fields(lines[3]))
	assert.Equal(t, "target: 600 kcal at {carb: 0.2, fat: 0.2, protein: 0.6}", lines[4])
	assert.Equal(t, "macros: 30g carb, 30g fat, 90g protein in 600 kcal (20:20:60)", lines[5])
	assert.True(t, strings.HasPrefix(lines[6], "cost: "))
}

func TestWrite_TableInspect(t *testing.T) {
	catalog, err := nutrient.NewCatalog(
		nutrient.Ingredient{Name: "olive oil", Grams: 100, Kcal: 884, Fat: 100},
	)
	require.NoError(t, err)
	r := New(header.KindInspectReport, "", target.Target{Kcal: 2500, Carb: 45, Fat: 25, Protein: 30}, catalog)

	var buf bytes.Buffer
	require.NoError(t, Write(context.Background(), &buf, "table", r))

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 4)
	assert.Equal(t, []string{"INGREDIENT", "G", "KCAL", "CARB", "FAT", "PROTEIN"}, strings.Fields(lines[0]))
	assert.True(t, strings.HasPrefix(lines[2], "olive oil"), lines[2])
	assert.Equal(t, []string{"100", "884", "0", "100", "0"}, strings.Fields(lines[2])[2:])
	assert.Equal(t, "target: 2500 kcal at {carb: 0.45, fat: 0.25, protein: 0.3}", lines[3])
}

func TestWriteText(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteText(&buf, tofuRun(t)))
	out := buf.String()

	assert.Contains(t, out, "Starting search with")
	assert.Contains(t, out, "Target {carb: 0.2, fat: 0.2, protein: 0.6} in 600 kcal")
	assert.Contains(t, out, "Constraints exact: [sugar=0], at least: [], at most: []")
	assert.Contains(t, out, "Ingredient tofu {carb: 0.05, fat: 0.05, protein: 0.15}")
	assert.Contains(t, out, "Found {sugar=0, tofu=3} with cost ")
	assert.Contains(t, out, "---- RESULT ----")
	assert.Contains(t, out, "300 g")
	assert.NotContains(t, out, "sugar  ", "zero gram ingredients are omitted from the mixture")
	assert.Contains(t, out, "Results in 30g carb, 30g fat, 90g protein in 600 kcal (20:20:60).")
}

func TestWriteText_KeepsNames(t *testing.T) {
	catalog, err := nutrient.NewCatalog(
		nutrient.Ingredient{Name: "BCAA powder", Grams: 10, Kcal: 40, Protein: 10},
		nutrient.Ingredient{Name: "olive oil", Grams: 100, Kcal: 884, Fat: 100},
	)
	require.NoError(t, err)

	tgt := target.Target{Kcal: 900, Fat: 50, Protein: 50}
	res, err := optimizer.New(optimizer.WithSteps(10)).Optimize(context.Background(), tgt.Normalize(), nil, catalog)
	require.NoError(t, err)
	m, err := projection.Project(res.Proposal, tgt.Kcal, catalog)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, WriteText(&buf, New(header.KindMixReport, "", tgt, catalog, WithResult(res, m))))
	out := buf.String()

	assert.Contains(t, out, "Ingredient BCAA powder {")
	assert.Contains(t, out, "Ingredient olive oil {")
	assert.NotContains(t, out, "Bcaa")
	assert.NotContains(t, out, "Olive Oil")

	for _, line := range strings.Split(out, "\n") {
		if strings.HasPrefix(strings.TrimSpace(line), "BCAA powder") || strings.HasPrefix(strings.TrimSpace(line), "olive oil") {
			return
		}
	}
	t.Errorf("mixture lines should use the ingredient names as given:\n%s", out)
}

func TestWriteText_Inspect(t *testing.T) {
	catalog, err := nutrient.NewCatalog(
		nutrient.Ingredient{Name: "tofu", Grams: 100, Kcal: 200, Carb: 10, Fat: 10, Protein: 30},
	)
	require.NoError(t, err)

	r := New(header.KindInspectReport, "", target.Target{Kcal: 2500, Carb: 45, Fat: 25, Protein: 30}, catalog)

	var buf bytes.Buffer
	require.NoError(t, WriteText(&buf, r))
	out := buf.String()
	assert.Contains(t, out, "Inputs")
	assert.Contains(t, out, "in 2,500 kcal")
	assert.NotContains(t, out, "RESULT")
	assert.NotContains(t, out, "Constraints")
}

func TestParseFormat(t *testing.T) {
	for _, in := range []string{"", "text", "TEXT", "json", "yaml", "table"} {
		_, err := ParseFormat(in)
		assert.NoError(t, err, in)
	}

	got, err := ParseFormat("")
	require.NoError(t, err)
	assert.Equal(t, FormatText, got)

	_, err = ParseFormat("toml")
	require.Error(t, err)
	assert.True(t, errors.HasCode(err, errors.ErrCodeInvalidConfig))

	err = Write(context.Background(), &bytes.Buffer{}, "xml", tofuRun(t))
	assert.True(t, errors.HasCode(err, errors.ErrCodeInvalidConfig))
}
