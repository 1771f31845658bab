package csvutil_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/M-Vasconez/fin/internal/utils/csvutil"
)

func TestParseTable(t *testing.T) {
	data := []byte("id,name\n1,\"Smith, Jane\"\n2,Bob\n")

	header, rows, err := csvutil.ParseTable(data)

	require.NoError(t, err)
	assert.Equal(t, []string{"id", "name"}, header)
	require.Len(t, rows, 2)
	assert.Equal(t, "Smith, Jane", rows[0][1])
}

func TestParseTable_EmptyFile(t *testing.T) {
	_, _, err := csvutil.ParseTable([]byte(""))
	assert.Error(t, err)
}

func TestParseTable_RaggedRowsRejected(t *testing.T) {
	_, _, err := csvutil.ParseTable([]byte("a,b\n1,2,3\n"))
	assert.Error(t, err)
}

func TestIndexColumns(t *testing.T) {
	header := []string{" ID ", "Name", "balance"}

	index, err := csvutil.IndexColumns(header, []string{"id", "balance"})

	require.NoError(t, err)
	assert.Equal(t, 0, index["id"])
	assert.Equal(t, 2, index["balance"])
}

func TestIndexColumns_MissingColumnNamed(t *testing.T) {
	_, err := csvutil.IndexColumns([]string{"id", "name"}, []string{"id", "balance"})

	require.Error(t, err)
	assert.Contains(t, err.Error(), `"balance"`)
}

func TestWriteTableRoundTrip(t *testing.T) {
	header := []string{"id", "note"}
	rows := [][]string{{"1", "has, comma"}, {"2", "has \"quotes\""}, {"3", "has\nnewline"}}

	var buf bytes.Buffer
	require.NoError(t, csvutil.WriteTable(&buf, header, rows))

	gotHeader, gotRows, err := csvutil.ParseTable(buf.Bytes())
	require.NoError(t, err)
	assert.Equal(t, header, gotHeader)
	assert.Equal(t, rows, gotRows)
}
