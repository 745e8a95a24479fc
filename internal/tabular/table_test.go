package tabular

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ArshadAliDS/Amazon/pkg/log"
)

func TestParseTabDelimited(t *testing.T) {
	log.SetupTestLogger()

	table := ParseTabDelimited("sku\tprice\tqty\nABC-1\t19.99\t2\nABC-2\t5.00\t1\n")

	assert.Equal(t, []string{"sku", "price", "qty"}, table.Columns)
	require.Len(t, table.Rows, 2)
	assert.Equal(t, []string{"ABC-1", "19.99", "2"}, table.Rows[0])
	assert.False(t, table.Empty())
}

func TestParseTabDelimited_SkipsMalformedLines(t *testing.T) {
	log.SetupTestLogger()

	// Second data line is short one field, third has one extra.
	table := ParseTabDelimited("a\tb\n1\t2\nonly-one\n3\t4\t5\n6\t7\n")

	assert.Equal(t, [][]string{{"1", "2"}, {"6", "7"}}, table.Rows)
}

func TestParseTabDelimited_QuotesAreLiteral(t *testing.T) {
	log.SetupTestLogger()

	table := ParseTabDelimited("sku\ttitle\nABC-1\t24\" monitor\n")

	require.Len(t, table.Rows, 1)
	assert.Equal(t, `24" monitor`, table.Rows[0][1])
}

func TestParseTabDelimited_HeaderOnlyAndEmpty(t *testing.T) {
	log.SetupTestLogger()

	headerOnly := ParseTabDelimited("a\tb\n")
	assert.Equal(t, []string{"a", "b"}, headerOnly.Columns)
	assert.True(t, headerOnly.Empty())

	empty := ParseTabDelimited("")
	assert.True(t, empty.Empty())
	assert.Nil(t, empty.Columns)
}

func TestParseTabDelimited_WindowsLineEndings(t *testing.T) {
	log.SetupTestLogger()

	table := ParseTabDelimited("a\tb\r\n1\t2\r\n")
	assert.Equal(t, [][]string{{"1", "2"}}, table.Rows)
}

func TestTableCSV(t *testing.T) {
	table := &Table{
		Columns: []string{"sku", "title"},
		Rows:    [][]string{{"ABC-1", `says "hi", often`}},
	}

	out, err := table.CSV()
	assert.NoError(t, err)
	assert.Equal(t, "sku,title\nABC-1,\"says \"\"hi\"\", often\"\n", string(out))
}
