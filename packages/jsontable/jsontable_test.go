package jsontable

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const commentsDoc = `{
  "comments": [
    {"id": 1, "user": {"id": 1, "username": "test"}},
    {"id": 2, "user": {"id": 2, "username": "test2"}}
  ],
  "total": 340,
  "skip": 0,
  "limit": 2
}`

func mustParse(t *testing.T, doc string) Value {
	t.Helper()
	v, err := Parse([]byte(doc))
	require.NoError(t, err)
	return v
}

func TestToTable_StartFromKey(t *testing.T) {
	table := ToTable(mustParse(t, commentsDoc), "comments")

	assert.Equal(t, [][]string{
		{"id", "user.id", "user.username"},
		{"1", "1", "test"},
		{"2", "2", "test2"},
	}, table.Strings())
	assert.Equal(t, KindNumber, table[1][0].Kind())
	assert.Equal(t, KindString, table[1][2].Kind())
}

func TestToTable_WholeDocument(t *testing.T) {
	table := ToTable(mustParse(t, commentsDoc), "")

	assert.Equal(t, [][]string{
		{
			"comments.0.id", "comments.0.user.id", "comments.0.user.username",
			"comments.1.id", "comments.1.user.id", "comments.1.user.username",
			"total", "skip", "limit",
		},
		{"1", "1", "test", "2", "2", "test2", "340", "0", "2"},
	}, table.Strings())
}

func TestToTable_Examples(t *testing.T) {
	tests := []struct {
		name string
		doc  string
		key  string
		want [][]string
	}{
		{
			name: "nested object",
			doc:  `{"a":{"b":1},"c":2}`,
			want: [][]string{{"a.b", "c"}, {"1", "2"}},
		},
		{
			name: "missing field",
			doc:  `[{"id":1},{"id":2,"name":"x"}]`,
			want: [][]string{{"id", "name"}, {"1", ""}, {"2", "x"}},
		},
		{
			name: "empty array",
			doc:  `[]`,
			want: [][]string{{}},
		},
		{
			name: "all row-sources empty",
			doc:  `[{}, {}]`,
			want: [][]string{{}},
		},
		{
			name: "empty row-source among others",
			doc:  `[{}, {"a":1}]`,
			want: [][]string{{"a"}, {""}, {"1"}},
		},
		{
			name: "null renders empty",
			doc:  `[{"a":null,"b":true}]`,
			want: [][]string{{"a", "b"}, {"", "true"}},
		},
		{
			name: "array elements keyed by index",
			doc:  `{"tags":["go","json"]}`,
			want: [][]string{{"tags.0", "tags.1"}, {"go", "json"}},
		},
		{
			name: "empty nested object contributes nothing",
			doc:  `{"a":{},"b":1}`,
			want: [][]string{{"b"}, {"1"}},
		},
		{
			name: "start key that is not an array",
			doc:  `{"data":{"x":1}}`,
			key:  "data",
			want: [][]string{{"data.x"}, {"1"}},
		},
		{
			name: "missing start key",
			doc:  `{"x":1}`,
			key:  "data",
			want: [][]string{{"x"}, {"1"}},
		},
		{
			name: "array root ignores start key",
			doc:  `[{"a":1}]`,
			key:  "data",
			want: [][]string{{"a"}, {"1"}},
		},
		{
			name: "header in first-seen order",
			doc:  `[{"b":1,"a":2},{"c":3,"a":4}]`,
			want: [][]string{{"b", "a", "c"}, {"1", "2", ""}, {"", "4", "3"}},
		},
		{
			name: "scalar root",
			doc:  `5`,
			want: [][]string{{}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			table := ToTable(mustParse(t, tt.doc), tt.key)
			assert.Equal(t, tt.want, table.Strings())
		})
	}
}

func TestToTable_RowsAlignedToHeader(t *testing.T) {
	docs := []string{
		commentsDoc,
		`[{"a":1},{"b":{"c":[1,2,3]}},{"a":2,"d":"x"}]`,
		`[{"x":{"y":{"z":1}}},{"x":{"y":2}}]`,
	}

	for _, doc := range docs {
		v := mustParse(t, doc)
		table := ToTable(v, "")

		distinct := make(map[string]bool)
		for _, src := range rowSources(v, "") {
			for _, k := range Flatten(src, "").Keys() {
				distinct[k] = true
			}
		}

		header := table.Header()
		assert.Len(t, header, len(distinct))
		for _, row := range table[1:] {
			assert.Len(t, row, len(header))
		}
	}
}

func TestMerge(t *testing.T) {
	a := ToTable(mustParse(t, `[{"a":1},{"a":2,"b":"x"}]`), "")
	b := ToTable(mustParse(t, `[{"c":3,"a":4}]`), "")
	empty := ToTable(mustParse(t, `[]`), "")

	merged := Merge(a, empty, b)

	assert.Equal(t, []string{"a", "b", "c"}, merged.Header())
	assert.Equal(t, [][]string{
		{"a", "b", "c"},
		{"1", "", ""},
		{"2", "x", ""},
		{"4", "", "3"},
	}, merged.Strings())
	assert.Equal(t, KindNumber, merged[3][0].Kind())
}

func TestMerge_NoColumns(t *testing.T) {
	assert.Equal(t, [][]string{{}}, Merge().Strings())
	assert.Equal(t, [][]string{{}}, Merge(Table{{}}, Table{{}}).Strings())
}

func TestFlatten_FlatObjectIsUnchanged(t *testing.T) {
	v := Object(M("id", Int(7)), M("name", String("x")), M("ok", Bool(true)), M("none", Null()))

	rec := Flatten(v, "")

	require.Equal(t, []string{"id", "name", "ok", "none"}, rec.Keys())
	for _, m := range v.Members() {
		got, ok := rec.Get(m.Key)
		require.True(t, ok)
		assert.Equal(t, m.Value, got)
	}
}

func TestFlatten_Prefix(t *testing.T) {
	v := Object(M("user", Object(M("id", Int(1)))), M("tags", Array(String("a"))))

	rec := Flatten(v, "root")

	assert.Equal(t, []string{"root.user.id", "root.tags.0"}, rec.Keys())
}

func TestFlatten_CollisionOverwrites(t *testing.T) {
	// "a.0" as a literal key collides with index 0 of array "a".
	v := Object(M("a", Array(String("first"))), M("a.0", String("second")))

	rec := Flatten(v, "")

	assert.Equal(t, []string{"a.0"}, rec.Keys())
	got, _ := rec.Get("a.0")
	assert.Equal(t, "second", got.Text())
}

func TestParse_KeepsKeyOrder(t *testing.T) {
	v := mustParse(t, `{"z":1,"a":2,"m":{"y":1,"b":2}}`)

	var keys []string
	for _, m := range v.Members() {
		keys = append(keys, m.Key)
	}
	assert.Equal(t, []string{"z", "a", "m"}, keys)

	nested, ok := v.Get("m")
	require.True(t, ok)
	assert.Equal(t, "y", nested.Members()[0].Key)
}

func TestParse_DuplicateKeyKeepsFirstPosition(t *testing.T) {
	v := mustParse(t, `{"a":1,"b":2,"a":3}`)

	require.Equal(t, 2, v.Len())
	assert.Equal(t, "a", v.Members()[0].Key)
	assert.Equal(t, "3", v.Members()[0].Value.Text())
}

func TestParse_Scalars(t *testing.T) {
	v := mustParse(t, `[1, -2.5e3, "s", true, false, null]`)

	kinds := make([]Kind, 0, v.Len())
	for _, item := range v.Items() {
		kinds = append(kinds, item.Kind())
	}
	assert.Equal(t, []Kind{KindNumber, KindNumber, KindString, KindBool, KindBool, KindNull}, kinds)
	assert.Equal(t, "-2500", v.Items()[1].Text())

	f, ok := v.Items()[1].Float()
	require.True(t, ok)
	assert.Equal(t, -2500.0, f)
}

func TestValue_NumberText(t *testing.T) {
	tests := map[string]string{
		"0":                       "0",
		"-7":                      "-7",
		"12345678901234567890123": "12345678901234567890123",
		"1.50e3":                  "1500",
		"0.10":                    "0.1",
		"9.5":                     "9.5",
		"-0.0":                    "0",
		"1E2":                     "100",
		"1e21":                    "1e+21",
		"1e-7":                    "1e-7",
		"0.000001":                "0.000001",
		"2.5e-8":                  "2.5e-8",
	}

	for literal, want := range tests {
		t.Run(literal, func(t *testing.T) {
			assert.Equal(t, want, Number(literal).Text())
		})
	}
}

func TestParse_Invalid(t *testing.T) {
	for _, doc := range []string{"", "   ", "{", `{"a":}`, `[1,]`} {
		_, err := Parse([]byte(doc))
		assert.ErrorIs(t, err, ErrInvalidJSON, "doc %q", doc)
	}
}

func TestValue_MarshalJSONKeepsOrder(t *testing.T) {
	v := mustParse(t, `{"z":1,"a":[true,null,"s\"q"],"m":{}}`)

	data, err := v.MarshalJSON()

	require.NoError(t, err)
	assert.Equal(t, `{"z":1,"a":[true,null,"s\"q"],"m":{}}`, string(data))
}

func TestValue_Get(t *testing.T) {
	v := Object(M("a", Int(1)))

	_, ok := v.Get("b")
	assert.False(t, ok)
	_, ok = Array().Get("a")
	assert.False(t, ok)
	assert.Equal(t, KindNull, Value{}.Kind())
}
