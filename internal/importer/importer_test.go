package importer

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/hyerin/vocadrill/internal/vocab"
)

func TestParseRows_EnglishHeader(t *testing.T) {
	res := ParseRows([][]string{
		{"Korean", "Chinese", "Example"},
		{"안녕하세요", "你好", "안녕하세요, 만나서 반가워요."},
		{"감사합니다", "谢谢", ""},
	})

	require.Len(t, res.Items, 2)
	assert.Empty(t, res.Errors)
	assert.Equal(t, "안녕하세요", res.Items[0].Headword)
	assert.Equal(t, "你好", res.Items[0].Meaning)
	assert.Equal(t, "안녕하세요, 만나서 반가워요.", res.Items[0].Example)
	assert.Equal(t, vocab.OriginUploaded, res.Items[0].Origin)
	assert.Equal(t, vocab.TierUnclassified, res.Items[0].Tier)
	assert.Empty(t, res.Items[0].ID)
}

func TestParseRows_KoreanHeader(t *testing.T) {
	res := ParseRows([][]string{
		{"한국어", "뜻", "예문"},
		{"물", "water", "물 주세요."},
	})

	require.Len(t, res.Items, 1)
	assert.Equal(t, "물", res.Items[0].Headword)
	assert.Equal(t, "water", res.Items[0].Meaning)
}

func TestParseRows_ChineseHeaderReordered(t *testing.T) {
	// Header conventions bind columns by name, not position.
	res := ParseRows([][]string{
		{"中文", "韩语", "例句"},
		{"朋友", "친구", "친구를 만나요."},
	})

	require.Len(t, res.Items, 1)
	assert.Equal(t, "친구", res.Items[0].Headword)
	assert.Equal(t, "朋友", res.Items[0].Meaning)
	assert.Equal(t, "친구를 만나요.", res.Items[0].Example)
}

func TestParseRows_PositionalFallback(t *testing.T) {
	// No recognizable header: the first row is data.
	res := ParseRows([][]string{
		{"학교", "school", "학교에 가요."},
		{"집", "house", ""},
	})

	require.Len(t, res.Items, 2)
	assert.Equal(t, "학교", res.Items[0].Headword)
	assert.Equal(t, "집", res.Items[1].Headword)
}

func TestParseRows_ContinuationRowsAppendExamples(t *testing.T) {
	res := ParseRows([][]string{
		{"Korean", "Meaning", "Example"},
		{"가다", "to go", "학교에 가요."},
		{"", "", "집에 가요."},
		{"", "", "빨리 가!"},
		{"오다", "to come", ""},
		{"", "", "이리 오세요."},
	})

	require.Len(t, res.Items, 2)
	assert.Equal(t, "학교에 가요.\n집에 가요.\n빨리 가!", res.Items[0].Example)
	assert.Equal(t, "이리 오세요.", res.Items[1].Example)
	assert.Empty(t, res.Errors)
}

func TestParseRows_BlankRowsSkipped(t *testing.T) {
	res := ParseRows([][]string{
		{"Korean", "Meaning"},
		{"하나", "one"},
		{"", ""},
		{},
		{"둘", "two"},
	})

	require.Len(t, res.Items, 2)
	assert.Equal(t, 2, res.Skipped)
	assert.Empty(t, res.Errors)
}

func TestParseRows_MalformedRowsCollected(t *testing.T) {
	res := ParseRows([][]string{
		{"Korean", "Meaning", "Example"},
		{"하나", "one", ""},
		{"외로운", "", ""},            // headword without meaning
		{"", "orphan meaning", ""}, // meaning without headword
	})

	require.Len(t, res.Items, 1)
	require.Len(t, res.Errors, 2)
	assert.Contains(t, res.Errors[0], "row 3")
	assert.Contains(t, res.Errors[1], "row 4")
	assert.Equal(t, 1, res.Imported())
}

func TestParseRows_LeadingContinuationIsMalformed(t *testing.T) {
	res := ParseRows([][]string{
		{"Korean", "Meaning", "Example"},
		{"", "", "고아 예문"},
	})

	assert.Empty(t, res.Items)
	require.Len(t, res.Errors, 1)
}

func TestParseRows_HeaderWithoutExampleColumn(t *testing.T) {
	res := ParseRows([][]string{
		{"Korean", "Meaning"},
		{"바다", "sea"},
	})

	require.Len(t, res.Items, 1)
	assert.Empty(t, res.Items[0].Example)
}

func TestFile_CSV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "words.csv")
	data := "Korean,Chinese,Example\n산,山,산에 올라가요.\n,,정상이 보여요.\n"
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))

	res, err := File(path)
	require.NoError(t, err)
	require.Len(t, res.Items, 1)
	assert.Equal(t, "산", res.Items[0].Headword)
	assert.Equal(t, "산에 올라가요.\n정상이 보여요.", res.Items[0].Example)
}

func TestFile_XLSX(t *testing.T) {
	path := filepath.Join(t.TempDir(), "words.xlsx")

	f := excelize.NewFile()
	sheet := f.GetSheetName(0)
	rows := [][]string{
		{"한국어", "뜻", "예문"},
		{"비", "rain", "비가 와요."},
		{"눈", "snow", ""},
	}
	for i, row := range rows {
		for j, val := range row {
			cell, err := excelize.CoordinatesToCellName(j+1, i+1)
			require.NoError(t, err)
			require.NoError(t, f.SetCellValue(sheet, cell, val))
		}
	}
	require.NoError(t, f.SaveAs(path))
	require.NoError(t, f.Close())

	res, err := File(path)
	require.NoError(t, err)
	require.Len(t, res.Items, 2)
	assert.Equal(t, "비", res.Items[0].Headword)
	assert.Equal(t, "snow", res.Items[1].Meaning)
}

func TestFile_UnsupportedExtension(t *testing.T) {
	_, err := File("words.txt")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported file type")
}
