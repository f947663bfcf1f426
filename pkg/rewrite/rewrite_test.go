package rewrite_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/hookfix/pkg/rewrite"
)

const defective = `import React from 'react';

export const Foo = ({
  const { colors } = useTheme();
  const styles = useStyles();

  name,
  value,
}) => {
  return <Text style={styles.label}>{name}</Text>;
};
`

const corrected = `import React from 'react';

export const Foo = ({
  name,
  value,
}) => {
  const { colors } = useTheme();
  const styles = useStyles();

  return <Text style={styles.label}>{name}</Text>;
};
`

func TestRewrite_RelocatesHookPreamble(t *testing.T) {
	t.Parallel()

	r := rewrite.NewDefault()
	res := r.Rewrite([]byte(defective))

	require.True(t, res.Changed)
	assert.Equal(t, corrected, string(res.Content))

	require.Len(t, res.Blocks, 1)
	assert.Equal(t, "Foo", res.Blocks[0].Component)
	assert.Equal(t, 3, res.Blocks[0].Line)
	assert.Equal(t, 2, res.Blocks[0].Params)
}

func TestRewrite_Idempotent(t *testing.T) {
	t.Parallel()

	r := rewrite.NewDefault()
	first := r.Rewrite([]byte(defective))
	require.True(t, first.Changed)

	second := r.Rewrite(first.Content)
	assert.False(t, second.Changed)
	assert.Equal(t, string(first.Content), string(second.Content))
}

func TestRewrite_AlreadyCorrected(t *testing.T) {
	t.Parallel()

	res := rewrite.NewDefault().Rewrite([]byte(corrected))

	assert.False(t, res.Changed)
	assert.Equal(t, corrected, string(res.Content))
	assert.Empty(t, res.Blocks)
}

func TestRewrite_NoMatch(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
	}{
		{
			name:  "empty input",
			input: "",
		},
		{
			name:  "plain source without components",
			input: "const x = 1;\nconst y = 2;\n",
		},
		{
			name: "no blank line between preamble and props",
			input: "export const Foo = ({\n" +
				"  const { colors } = useTheme();\n" +
				"  const styles = useStyles();\n" +
				"  name,\n" +
				"}) => {\n",
		},
		{
			name: "two blank lines between preamble and props",
			input: "export const Foo = ({\n" +
				"  const { colors } = useTheme();\n" +
				"  const styles = useStyles();\n" +
				"\n\n" +
				"  name,\n" +
				"}) => {\n",
		},
		{
			name: "only one hook line",
			input: "export const Foo = ({\n" +
				"  const { colors } = useTheme();\n" +
				"\n" +
				"  name,\n" +
				"}) => {\n",
		},
		{
			name: "hook lines in wrong order",
			input: "export const Foo = ({\n" +
				"  const styles = useStyles();\n" +
				"  const { colors } = useTheme();\n" +
				"\n" +
				"  name,\n" +
				"}) => {\n",
		},
		{
			name: "prop line is not a bare identifier",
			input: "export const Foo = ({\n" +
				"  const { colors } = useTheme();\n" +
				"  const styles = useStyles();\n" +
				"\n" +
				"  onPress = () => {},\n" +
				"}) => {\n",
		},
		{
			name: "no props before closer",
			input: "export const Foo = ({\n" +
				"  const { colors } = useTheme();\n" +
				"  const styles = useStyles();\n" +
				"\n" +
				"}) => {\n",
		},
		{
			name: "header truncated at end of file",
			input: "export const Foo = ({\n" +
				"  const { colors } = useTheme();\n" +
				"  const styles = useStyles();\n",
		},
	}

	r := rewrite.NewDefault()

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			res := r.Rewrite([]byte(tt.input))
			assert.False(t, res.Changed)
			assert.Equal(t, tt.input, string(res.Content))
		})
	}
}

func TestRewrite_ReactMemoWrapper(t *testing.T) {
	t.Parallel()

	input := "export const Card = React.memo<CardProps>(({\n" +
		"  const { colors } = useTheme();\n" +
		"  const styles = useStyles();\n" +
		"\n" +
		"  title,\n" +
		"}) => {\n" +
		"  return null;\n" +
		"});\n"

	want := "export const Card = React.memo<CardProps>(({\n" +
		"  title,\n" +
		"}) => {\n" +
		"  const { colors } = useTheme();\n" +
		"  const styles = useStyles();\n" +
		"\n" +
		"  return null;\n" +
		"});\n"

	res := rewrite.NewDefault().Rewrite([]byte(input))

	require.True(t, res.Changed)
	assert.Equal(t, want, string(res.Content))
	require.Len(t, res.Blocks, 1)
	assert.Equal(t, "Card", res.Blocks[0].Component)
}

func TestRewrite_MultipleBlocks(t *testing.T) {
	t.Parallel()

	block := func(name string) string {
		return "export const " + name + " = ({\n" +
			"  const { colors } = useTheme();\n" +
			"  const styles = useStyles();\n" +
			"\n" +
			"  value,\n" +
			"}) => {\n" +
			"  return null;\n" +
			"};\n"
	}

	between := "// shared helpers stay put\n"
	input := block("First") + between + block("Second")

	res := rewrite.NewDefault().Rewrite([]byte(input))

	require.True(t, res.Changed)
	require.Len(t, res.Blocks, 2)
	assert.Equal(t, "First", res.Blocks[0].Component)
	assert.Equal(t, "Second", res.Blocks[1].Component)
	assert.Contains(t, string(res.Content), between)

	// Both blocks must be in corrected form.
	assert.Equal(t, 2, strings.Count(string(res.Content), "}) => {\n  const { colors }"))
}

func TestRewrite_PreservesSurroundingBytes(t *testing.T) {
	t.Parallel()

	prefix := "// Copyright header\nimport { useTheme } from './theme';\n\n"
	suffix := "\nexport default Foo;\n"
	input := prefix + defective[strings.Index(defective, "export"):]
	input += suffix

	res := rewrite.NewDefault().Rewrite([]byte(input))

	require.True(t, res.Changed)
	got := string(res.Content)
	assert.True(t, strings.HasPrefix(got, prefix), "prefix altered")
	assert.True(t, strings.HasSuffix(got, suffix), "suffix altered")
}

func TestRewrite_ConfiguredBindings(t *testing.T) {
	t.Parallel()

	input := "export const Foo = ({\n" +
		"  const { palette } = useTheme();\n" +
		"  const sx = makeStyles();\n" +
		"\n" +
		"  name,\n" +
		"}) => {\n"

	// Defaults do not recognize the renamed bindings.
	res := rewrite.NewDefault().Rewrite([]byte(input))
	assert.False(t, res.Changed)

	r := rewrite.New(rewrite.Options{ThemeBinding: "palette", StylesBinding: "sx"})
	res = r.Rewrite([]byte(input))
	assert.True(t, res.Changed)
}
