package huffman

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/kr/pretty"
	"github.com/stretchr/testify/require"
)

func mustParseCode(str string) Code {
	hc, err := ParseCode(str)
	if err != nil {
		panic(err)
	}
	return hc
}

func expectCodeMap(t *testing.T, expect CodeMap, actual CodeMap) {
	t.Helper()
	if diff := pretty.Diff(expect, actual); len(diff) != 0 {
		t.Errorf("wrong code map:\n\t%s", strings.Join(diff, "\n\t"))
	}
}

func TestBuildCodeMap(t *testing.T) {
	type testRow struct {
		name  string
		ft    FrequencyTable
		codes map[Symbol]string
	}

	testData := [...]testRow{
		{
			name:  "single",
			ft:    FrequencyTable{'a': 3},
			codes: map[Symbol]string{'a': ""},
		},
		{
			name:  "tie",
			ft:    FrequencyTable{'a': 2, 'b': 2},
			codes: map[Symbol]string{'a': "1", 'b': "0"},
		},
		{
			name:  "abracadabra",
			ft:    FrequencyTable{'a': 5, 'b': 2, 'r': 2, 'c': 1, 'd': 1},
			codes: map[Symbol]string{'a': "0", 'b': "10", 'r': "111", 'c': "1101", 'd': "1100"},
		},
		{
			name: "textbook",
			ft:   FrequencyTable{'a': 5, 'b': 9, 'c': 12, 'd': 13, 'e': 16, 'f': 45},
			codes: map[Symbol]string{
				'a': "1100",
				'b': "1101",
				'c': "100",
				'd': "101",
				'e': "111",
				'f': "0",
			},
		},
	}
	for _, row := range testData {
		t.Run(row.name, func(t *testing.T) {
			expect := make(CodeMap, len(row.codes))
			for symbol, str := range row.codes {
				expect[symbol] = mustParseCode(str)
			}
			actual := BuildCodeMap(BuildTree(row.ft))
			expectCodeMap(t, expect, actual)
			require.NoError(t, actual.Validate())
		})
	}
}

func TestBuildCodeMap_Nil(t *testing.T) {
	require.Nil(t, BuildCodeMap(nil))
}

func TestBuildCodeMap_NoAliasing(t *testing.T) {
	code := BuildCodeMap(BuildTree(CountString("abracadabra")))

	// 'c' and 'd' share the prefix "110"; each must own its storage.
	code['c'][0] = false
	code['c'][3] = false
	require.Equal(t, "\"0100\"", code['c'].String())
	require.Equal(t, "\"1100\"", code['d'].String())
	require.Equal(t, "\"111\"", code['r'].String())
	require.Equal(t, "\"10\"", code['b'].String())
}

func TestCodeMap_PrefixFree(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	for i := 0; i < 50; i++ {
		input := randomSymbols(rng, 1+rng.Intn(400), 1+rng.Intn(80))
		code := BuildCodeMap(BuildTree(CountFrequencies(input)))
		require.NoError(t, code.Validate())
		for a, ca := range code {
			for b, cb := range code {
				if a != b {
					require.False(t, ca.HasPrefix(cb), "%s=%s has prefix %s=%s", a, ca, b, cb)
				}
			}
		}
	}
}

func TestCodeMap_Validate(t *testing.T) {
	type testRow struct {
		name  string
		codes map[Symbol]string
		ok    bool
	}

	testData := [...]testRow{
		{name: "empty", codes: map[Symbol]string{}, ok: true},
		{name: "single-empty", codes: map[Symbol]string{'a': ""}, ok: true},
		{name: "single", codes: map[Symbol]string{'a': "0"}, ok: true},
		{name: "incomplete", codes: map[Symbol]string{'a': "0", 'b': "10"}, ok: true},
		{name: "empty-among-others", codes: map[Symbol]string{'a': "", 'b': "1"}, ok: false},
		{name: "prefix", codes: map[Symbol]string{'a': "0", 'b': "01"}, ok: false},
		{name: "prefix-not-adjacent", codes: map[Symbol]string{'a': "1", 'b': "0", 'c': "11"}, ok: false},
		{name: "duplicate", codes: map[Symbol]string{'a': "10", 'b': "10", 'c': "0"}, ok: false},
	}
	for _, row := range testData {
		t.Run(row.name, func(t *testing.T) {
			code := make(CodeMap, len(row.codes))
			for symbol, str := range row.codes {
				code[symbol] = mustParseCode(str)
			}
			err := code.Validate()
			if row.ok {
				require.NoError(t, err)
			} else {
				require.ErrorIs(t, err, ErrInvalidCode)
			}
		})
	}
}

func TestCodeMap_EncodedSize(t *testing.T) {
	ft := CountString("abracadabra")
	code := BuildCodeMap(BuildTree(ft))
	size, err := code.EncodedSize(ft)
	require.NoError(t, err)
	require.Equal(t, uint64(23), size)
	require.Equal(t, 1, code.MinSize())
	require.Equal(t, 4, code.MaxSize())

	huge := CodeMap{'a': mustParseCode("00"), 'b': mustParseCode("01"), 'c': mustParseCode("1")}
	size, err = huge.EncodedSize(FrequencyTable{'a': 1 << 63, 'b': 1})
	require.NoError(t, err)
	require.Equal(t, ^uint64(0), size)
	size, err = huge.EncodedSize(FrequencyTable{'a': 1 << 62, 'b': 1 << 62, 'c': 1})
	require.NoError(t, err)
	require.Equal(t, ^uint64(0), size)

	_, err = code.EncodedSize(FrequencyTable{'z': 1})
	require.ErrorIs(t, err, ErrUnknownSymbol)
}

func TestCodeMap_Dump(t *testing.T) {
	expectDump := strings.Join([]string{
		"CodeMap{\n",
		"\t'a': \"0\"\n",
		"\t'b': \"10\"\n",
		"\t'c': \"1101\"\n",
		"\t'd': \"1100\"\n",
		"\t'r': \"111\"\n",
		"}\n",
	}, "")

	var buf strings.Builder
	_, _ = BuildCodeMap(BuildTree(CountString("abracadabra"))).Dump(&buf)
	actualDump := buf.String()

	if expectDump != actualDump {
		t.Errorf("wrong output:\n\texpect: %s\n\tactual: %s", expectDump, actualDump)
	}
}
