package overtime

import (
	"errors"
	"mime/multipart"
	"testing"
	"time"

	"github.com/cmlabs-hris/overtime-backend-go/internal/pkg/validator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCalculateRequest_Validate(t *testing.T) {
	req := CalculateRequest{
		Records: []RecordRequest{
			{Date: "2024/05/01", ClockIn: "09:00", ClockOut: "18:00"},
			{Date: "2024/05/02", ClockIn: "", ClockOut: ""},
		},
	}
	require.NoError(t, req.Validate())

	req.Records = append(req.Records, RecordRequest{ClockIn: "9am", ClockOut: "25:00"})
	err := req.Validate()
	var errs validator.ValidationErrors
	require.True(t, errors.As(err, &errs))
	m := errs.ToMap()
	assert.Contains(t, m, "records[2].clock_in")
	assert.Contains(t, m, "records[2].clock_out")
}

func TestCalculateRequest_Validate_MaxRecords(t *testing.T) {
	req := CalculateRequest{
		Records:    make([]RecordRequest, 3),
		MaxRecords: 2,
	}
	err := req.Validate()
	var errs validator.ValidationErrors
	require.True(t, errors.As(err, &errs))
	assert.Contains(t, errs.ToMap(), "records")
}

func TestCalculateRequest_ToRecords(t *testing.T) {
	req := CalculateRequest{
		Records: []RecordRequest{
			{Date: " 2024/05/01 ", HolidayLabel: "公休", ClockIn: "09:00", ClockOut: "16:00"},
			{Date: "", ClockIn: "09:00"},
		},
	}
	records, err := req.ToRecords()
	require.NoError(t, err)
	require.Len(t, records, 2)

	assert.Equal(t, "2024/05/01", records[0].Date)
	assert.Equal(t, "公休", records[0].HolidayLabel)
	require.NotNil(t, records[0].ClockOut)
	assert.Equal(t, 7*time.Hour, records[0].ClockOut.Sub(*records[0].ClockIn))

	assert.NotNil(t, records[1].ClockIn)
	assert.Nil(t, records[1].ClockOut)
}

func TestUploadRequest_Validate(t *testing.T) {
	var req UploadRequest
	assert.Error(t, req.Validate())

	cases := []struct {
		filename string
		size     int64
		valid    bool
	}{
		{"timesheet.csv", 100, true},
		{"TIMESHEET.XLSX", 100, true},
		{"timesheet.xls", 100, false},
		{"timesheet", 100, false},
		{"timesheet.csv", 2048, false},
	}
	for _, c := range cases {
		req := UploadRequest{
			File:       nopFile{},
			FileHeader: &multipart.FileHeader{Filename: c.filename, Size: c.size},
			MaxBytes:   1024,
		}
		err := req.Validate()
		if c.valid {
			assert.NoError(t, err, c.filename)
		} else {
			assert.Error(t, err, c.filename)
		}
	}
}

func TestNewDurationResponse(t *testing.T) {
	resp := NewDurationResponse(90 * time.Minute)
	assert.Equal(t, int64(90), resp.Minutes)
	assert.Equal(t, "1時間 30分", resp.Text)
}

type nopFile struct{}

func (nopFile) Read(p []byte) (int, error) { return 0, nil }
func (nopFile) ReadAt(p []byte, off int64) (int, error) { return 0, nil }
func (nopFile) Seek(offset int64, whence int) (int64, error) { return 0, nil }
func (nopFile) Close() error { return nil }
