package service

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseMarksCSVSkipsHeader(t *testing.T) {
	in := "roll_no,question_id,obtained_marks\n21CS001,10,8\n21CS002,10,6.5\n"

	rows, err := ParseMarksCSV(strings.NewReader(in))
	require.NoError(t, err)
	require.Len(t, rows, 2)

	assert.Equal(t, "21CS001", rows[0].RollNo)
	assert.Equal(t, uint(10), rows[0].QuestionID)
	assert.InDelta(t, 8.0, rows[0].ObtainedMarks, 0.001)
	assert.InDelta(t, 6.5, rows[1].ObtainedMarks, 0.001)
}

func TestParseMarksCSVWithoutHeader(t *testing.T) {
	in := "21CS001,10,8\n21CS002,11,0\n"

	rows, err := ParseMarksCSV(strings.NewReader(in))
	require.NoError(t, err)
	require.Len(t, rows, 2)

	// an explicit zero is a recorded mark, not an absence
	assert.InDelta(t, 0.0, rows[1].ObtainedMarks, 0.001)
}

func TestParseMarksCSVTrimsWhitespace(t *testing.T) {
	in := "21CS001, 10 , 7.5 \n"

	rows, err := ParseMarksCSV(strings.NewReader(in))
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, uint(10), rows[0].QuestionID)
	assert.InDelta(t, 7.5, rows[0].ObtainedMarks, 0.001)
}

func TestParseMarksCSVRejectsShortRow(t *testing.T) {
	in := "21CS001,10,8\n21CS002,11\n"

	_, err := ParseMarksCSV(strings.NewReader(in))
	require.Error(t, err)
}

func TestParseMarksCSVRejectsBadQuestionID(t *testing.T) {
	in := "21CS001,ten,8\n"

	// not a header: only line 0 may carry a non-numeric second column
	_, err := ParseMarksCSV(strings.NewReader(in + "21CS002,abc,8\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid question id")
}

func TestParseMarksCSVRejectsBadMarks(t *testing.T) {
	in := "roll_no,question_id,obtained_marks\n21CS001,10,eight\n"

	_, err := ParseMarksCSV(strings.NewReader(in))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid marks")
}

func TestParseMarksCSVEmptyInput(t *testing.T) {
	rows, err := ParseMarksCSV(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, rows)
}
