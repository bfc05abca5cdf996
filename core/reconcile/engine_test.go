package reconcile

import (
	"errors"
	"math/rand"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDiff_Scenario(t *testing.T) {
	a := mustCollection(t, "a.json", `[{"id":"1","name":"Alice"},{"id":"2","name":"Bob"}]`)
	b := mustCollection(t, "b.json", `[{"id":"2","name":"Bobby"},{"id":"3","name":"Carl"}]`)

	res, err := Diff(a, b, "id")
	require.NoError(t, err)

	assert.Equal(t, "id", res.Identifier)
	assert.Equal(t, []string{"1"}, idStrings(res.OnlyInA))
	assert.Equal(t, []string{"3"}, idStrings(res.OnlyInB))
	assert.Equal(t, 1, res.Common)
	require.Len(t, res.Discrepancies, 1)
	assert.Equal(t, "2", res.Discrepancies[0].ID.String())
	assert.Equal(t, []string{"name"}, res.Discrepancies[0].Fields)
	assert.False(t, res.Identical())
}

func TestDiff_IdenticalCollections(t *testing.T) {
	doc := `[{"id":"1","name":"Alice","tags":["a"]},{"id":"2","name":"Bob","tags":[]}]`
	a := mustCollection(t, "a.json", doc)
	b := mustCollection(t, "b.json", doc)

	res, err := Diff(a, b, "id")
	require.NoError(t, err)
	assert.Empty(t, res.OnlyInA)
	assert.Empty(t, res.OnlyInB)
	assert.Empty(t, res.Discrepancies)
	assert.Equal(t, 2, res.Common)
	assert.True(t, res.Identical())
}

func TestDiff_SelfComparison(t *testing.T) {
	a := mustCollection(t, "a.json", `[{"id":1,"v":{"x":[1,2]}},{"id":2,"v":null},{"id":3,"v":true}]`)

	res, err := Diff(a, a, "id")
	require.NoError(t, err)
	assert.True(t, res.Identical())
}

func TestDiff_FieldOrderFollowsFirstCollection(t *testing.T) {
	a := mustCollection(t, "a.json", `[{"id":"1","z":1,"a":1,"m":1}]`)
	b := mustCollection(t, "b.json", `[{"m":2,"a":2,"id":"1","z":2}]`)

	res, err := Diff(a, b, "id")
	require.NoError(t, err)
	require.Len(t, res.Discrepancies, 1)
	assert.Equal(t, []string{"z", "a", "m"}, res.Discrepancies[0].Fields)
}

func TestDiff_ValueEquality(t *testing.T) {
	tests := []struct {
		name    string
		a, b    string
		differs bool
	}{
		{"IntEqualsFloat", `1`, `1.0`, false},
		{"IntEqualsExponent", `1`, `1e0`, false},
		{"BeyondFloatPrecision", `9007199254740993`, `9007199254740992`, true},
		{"NestedBeyondFloatPrecision", `{"n":[9007199254740993]}`, `{"n":[9007199254740992]}`, true},
		{"NestedIntEqualsFloat", `{"n":[1]}`, `{"n":[1.0]}`, false},
		{"StringVsNumber", `"1"`, `1`, true},
		{"BoolVsNumber", `true`, `1`, true},
		{"NullVsString", `null`, `""`, true},
		{"NullVsNull", `null`, `null`, false},
		{"EqualObjects", `{"a":1,"b":[1,2]}`, `{"b":[1,2],"a":1}`, false},
		{"DifferentObjects", `{"a":1}`, `{"a":2}`, true},
		{"ArrayOrderMatters", `[1,2]`, `[2,1]`, true},
		{"ObjectVsArray", `{}`, `[]`, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := mustCollection(t, "a.json", `[{"id":"k","v":`+tt.a+`}]`)
			b := mustCollection(t, "b.json", `[{"id":"k","v":`+tt.b+`}]`)

			res, err := Diff(a, b, "id")
			require.NoError(t, err)
			if tt.differs {
				require.Len(t, res.Discrepancies, 1)
				assert.Equal(t, []string{"v"}, res.Discrepancies[0].Fields)
			} else {
				assert.Empty(t, res.Discrepancies)
			}
		})
	}
}

func TestDiff_IdentifierNeverDiffers(t *testing.T) {
	a := mustCollection(t, "a.json", `[{"id":1,"v":"x"},{"id":2,"v":"y"}]`)
	b := mustCollection(t, "b.json", `[{"id":2.0,"v":"z"},{"id":1,"v":"w"}]`)

	res, err := Diff(a, b, "id")
	require.NoError(t, err)
	require.Len(t, res.Discrepancies, 2)
	for _, d := range res.Discrepancies {
		assert.NotContains(t, d.Fields, "id")
	}
	assert.Equal(t, "1", res.Discrepancies[0].ID.String())
	assert.Equal(t, "2", res.Discrepancies[1].ID.String())
}

func TestDiff_LargeNumericIdentifiers(t *testing.T) {
	a := mustCollection(t, "a.json", `[{"id":9007199254740992,"v":"x"},{"id":9007199254740993,"v":"y"}]`)
	b := mustCollection(t, "b.json", `[{"id":9007199254740993,"v":"y"},{"id":9007199254740994,"v":"z"}]`)

	res, err := Diff(a, b, "id")
	require.NoError(t, err)
	assert.Equal(t, []string{"9007199254740992"}, idStrings(res.OnlyInA))
	assert.Equal(t, []string{"9007199254740994"}, idStrings(res.OnlyInB))
	assert.Equal(t, 1, res.Common)
	assert.Empty(t, res.Discrepancies)
}

func TestDiff_OutputOrder(t *testing.T) {
	a := mustCollection(t, "a.json", `[{"id":"c"},{"id":"x"},{"id":"a"},{"id":"b"}]`)
	b := mustCollection(t, "b.json", `[{"id":"z"},{"id":"x"},{"id":"y"}]`)

	res, err := Diff(a, b, "id")
	require.NoError(t, err)
	assert.Equal(t, []string{"c", "a", "b"}, idStrings(res.OnlyInA))
	assert.Equal(t, []string{"z", "y"}, idStrings(res.OnlyInB))
}

func TestDiff_Partition(t *testing.T) {
	a := mustCollection(t, "a.json", `[{"id":1,"v":1},{"id":2,"v":1},{"id":3,"v":1},{"id":"3","v":1}]`)
	b := mustCollection(t, "b.json", `[{"id":3,"v":2},{"id":4,"v":1},{"id":2,"v":1},{"id":null,"v":1}]`)

	res, err := Diff(a, b, "id")
	require.NoError(t, err)

	union := map[string]int{}
	for _, c := range []*Collection{a, b} {
		for _, rec := range c.Records() {
			id, err := identifierOf(rec, "id")
			require.NoError(t, err)
			union[id.Key()] = 0
		}
	}

	for _, id := range res.OnlyInA {
		union[id.Key()]++
	}
	for _, id := range res.OnlyInB {
		union[id.Key()]++
	}
	assert.Equal(t, 2, res.Common)
	common := 0
	for _, n := range union {
		if n == 0 {
			common++
		}
		assert.LessOrEqual(t, n, 1)
	}
	assert.Equal(t, res.Common, common)
	assert.Equal(t, []string{"1", "3"}, idStrings(res.OnlyInA))
	assert.Equal(t, []string{"4", "null"}, idStrings(res.OnlyInB))
}

func TestDiff_PermutationKeepsMembership(t *testing.T) {
	a := mustCollection(t, "a.json", `[{"id":"1","v":1},{"id":"2","v":2},{"id":"3","v":3},{"id":"4","v":4},{"id":"5","v":5}]`)
	b := mustCollection(t, "b.json", `[{"id":"3","v":30},{"id":"4","v":4},{"id":"6","v":6},{"id":"5","v":50},{"id":"7","v":7}]`)

	base, err := Diff(a, b, "id")
	require.NoError(t, err)

	rng := rand.New(rand.NewSource(7))
	for i := 0; i < 10; i++ {
		pa := shuffled(t, rng, a)
		pb := shuffled(t, rng, b)

		res, err := Diff(pa, pb, "id")
		require.NoError(t, err)
		assert.ElementsMatch(t, idStrings(base.OnlyInA), idStrings(res.OnlyInA))
		assert.ElementsMatch(t, idStrings(base.OnlyInB), idStrings(res.OnlyInB))
		assert.ElementsMatch(t, discrepancyIDs(base), discrepancyIDs(res))

		// Output order follows the permuted input.
		assert.True(t, followsOrder(res.OnlyInA, pa))
		assert.True(t, followsOrder(res.OnlyInB, pb))
	}
}

func TestDiff_Errors(t *testing.T) {
	a := mustCollection(t, "a.json", `[{"id":"1","name":"a"}]`)

	t.Run("FieldAbsent", func(t *testing.T) {
		_, err := Diff(a, a, "nope")
		assert.True(t, errors.Is(err, ErrFieldAbsent))
	})

	t.Run("SchemaMismatch", func(t *testing.T) {
		b := mustCollection(t, "b.json", `[{"id":"1","title":"a"}]`)
		_, err := Diff(a, b, "id")
		assert.True(t, errors.Is(err, ErrSchemaMismatch))
		assert.Contains(t, err.Error(), "a.json and b.json")
	})

	t.Run("FieldAbsentInSecond", func(t *testing.T) {
		b := mustCollection(t, "b.json", `[{"key":"1","name":"a"}]`)
		_, err := Diff(a, b, "id")
		assert.True(t, errors.Is(err, ErrFieldAbsent))
		assert.Contains(t, err.Error(), "b.json")
	})

	t.Run("Unhashable", func(t *testing.T) {
		x := mustCollection(t, "x.json", `[{"id":[1],"name":"a"}]`)
		_, err := Diff(x, a, "id")
		assert.True(t, errors.Is(err, ErrUnhashableIdentifier))
	})
}

func TestDiff_DuplicateInSecondUsesFirstMatch(t *testing.T) {
	a := mustCollection(t, "a.json", `[{"id":"1","v":"x"}]`)
	b := mustCollection(t, "b.json", `[{"id":"1","v":"x"},{"id":"1","v":"y"}]`)

	res, err := Diff(a, b, "id")
	require.NoError(t, err)
	assert.Empty(t, res.Discrepancies)
	assert.Empty(t, res.OnlyInB)
}

func shuffled(t *testing.T, rng *rand.Rand, c *Collection) *Collection {
	t.Helper()
	records := append([]Record{}, c.Records()...)
	rng.Shuffle(len(records), func(i, j int) { records[i], records[j] = records[j], records[i] })
	out, err := NewCollection(c.Name(), records)
	require.NoError(t, err)
	return out
}

func discrepancyIDs(r *Result) []string {
	ids := make([]string, len(r.Discrepancies))
	for i, d := range r.Discrepancies {
		ids[i] = d.ID.String()
	}
	sort.Strings(ids)
	return ids
}

func followsOrder(ids []Identifier, c *Collection) bool {
	pos := map[string]int{}
	for i, rec := range c.Records() {
		id, _ := identifierOf(rec, "id")
		pos[id.Key()] = i
	}
	for i := 1; i < len(ids); i++ {
		if pos[ids[i-1].Key()] > pos[ids[i].Key()] {
			return false
		}
	}
	return true
}
