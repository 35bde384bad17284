package expand

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExpandPassthrough(t *testing.T) {
	tests := []string{
		"super + a",
		"super + {a,b",
		"super + a,b}",
		"super + {a,{b,c}}",
		"super + }a,b{",
		"super + {a} {b",
		"notify-send {é,è}",
		"",
	}
	for _, line := range tests {
		assert.Equal(t, []string{line}, Expand(line), "line %q", line)
	}
}

func TestExpandList(t *testing.T) {
	assert.Equal(t,
		[]string{"super + 1", "super + 2", "super + 3", "super + 4"},
		Expand("super + {1,2,3,4}"))

	// items are trimmed
	assert.Equal(t,
		[]string{"bspc desktop -f 1", "bspc desktop -f 2"},
		Expand("bspc desktop -f { 1 ,  2 }"))
}

func TestExpandRanges(t *testing.T) {
	tests := []struct {
		line string
		want []string
	}{
		{"{a-d}", []string{"a", "b", "c", "d"}},
		{"{1-3,x}", []string{"1", "2", "3", "x"}},
		{"{c-c}", []string{"c"}},
		{"{9-4}", []string{"9-4"}},
		{"{ab-c}", []string{"ab-c"}},
		{"{a-bc}", []string{"a-bc"}},
		{"{a-b-c}", []string{"a-b-c"}},
		{"{-}", []string{"-"}},
		{"{a-}", []string{"a-"}},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Expand(tt.line), "line %q", tt.line)
	}
}

func TestExpandProductOrder(t *testing.T) {
	got := Expand("super + {shift+, ctrl+} {1,2,3,4}")
	want := []string{
		"super + shift+ 1", "super + shift+ 2", "super + shift+ 3", "super + shift+ 4",
		"super + ctrl+ 1", "super + ctrl+ 2", "super + ctrl+ 3", "super + ctrl+ 4",
	}
	assert.Equal(t, want, got)
}

func TestExpandCardinality(t *testing.T) {
	tests := []struct {
		line string
		want int
	}{
		{"{a,b}", 2},
		{"{a,b}{c,d,e}", 6},
		{"x{a-e}y{1-4}z{p,q}", 40},
		{"{}", 1},
	}
	for _, tt := range tests {
		assert.Len(t, Expand(tt.line), tt.want, "line %q", tt.line)
	}
}

func TestExpandKeepsFixedSegmentsAndTail(t *testing.T) {
	got := Expand("riverctl {focus,swap}-view {next,previous} --tail")
	assert.Equal(t, []string{
		"riverctl focus-view next --tail",
		"riverctl focus-view previous --tail",
		"riverctl swap-view next --tail",
		"riverctl swap-view previous --tail",
	}, got)
}

func TestExpandEscapedComma(t *testing.T) {
	assert.Equal(t, []string{"super + ,", "super + ."}, Expand(`super + {\,, .}`))

	// a literal word that used to double as the placeholder is left alone
	assert.Equal(t, []string{"echo comma", "echo ,"}, Expand(`echo {comma,\,}`))
}

func TestExpandIsRestartable(t *testing.T) {
	line := "{a,b}{1-2}"
	first := Expand(line)
	second := Expand(line)
	assert.Equal(t, first, second)
	assert.Equal(t, "a1 a2 b1 b2", strings.Join(first, " "))
}

func TestProduct(t *testing.T) {
	got := Product([][]int{{1, 2}, {3, 4}, {5, 6}})
	want := [][]int{
		{1, 3, 5}, {1, 3, 6}, {1, 4, 5}, {1, 4, 6},
		{2, 3, 5}, {2, 3, 6}, {2, 4, 5}, {2, 4, 6},
	}
	assert.Equal(t, want, got)

	assert.Equal(t, [][]int{{}}, Product[int](nil))
	assert.Empty(t, Product([][]int{{1}, {}}))
}
