package domain

import (
	"strconv"
	"strings"
	"time"
)

// excelEpoch is the zero day of Excel's 1900 date system. Day 1 is
// 1900-01-01, and the system inherits Lotus 1-2-3's phantom 1900-02-29, which
// the 1899-12-30 epoch absorbs for all modern dates.
var excelEpoch = time.Date(1899, time.December, 30, 0, 0, 0, 0, time.UTC)

// Serial numbers outside this window are treated as measurements, not dates.
// 10000 is 1927-05-18, 80000 is 2119-01-12; temperatures never land there.
const (
	excelSerialMin = 10000
	excelSerialMax = 80000
)

// Day-first layouts are tried before ISO forms. "01/02/2024" is February 1st.
var dayFirstLayouts = []string{
	"02/01/2006 15:04:05",
	"02/01/2006 15:04",
	"02/01/2006",
	"02-01-2006 15:04:05",
	"02-01-2006 15:04",
	"02-01-2006",
	"02.01.2006 15:04:05",
	"02.01.2006 15:04",
	"02.01.2006",
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
	"2006-01-02 15:04",
	"2006-01-02",
	"2006/01/02 15:04:05",
	"2006/01/02 15:04",
	"2006/01/02",
}

var timeOfDayLayouts = []string{
	"15:04:05",
	"15:04",
}

// ParseDayFirst interprets a cell as a naive timestamp. Strings go through
// the day-first layout list; values in the Excel serial-date window are
// converted from the 1899-12-30 epoch. Spreadsheet decoding renders
// unformatted date cells as numeric strings ("45323.5"), so the serial
// window applies to strings too, after every layout has failed. All results
// are naive instants carried in UTC with no zone conversion.
func ParseDayFirst(v Cell) (time.Time, bool) {
	switch t := v.(type) {
	case string:
		s := strings.TrimSpace(t)
		if s == "" {
			return time.Time{}, false
		}
		for _, layout := range dayFirstLayouts {
			if ts, err := time.ParseInLocation(layout, s, time.UTC); err == nil {
				return ts, true
			}
		}
		if f, err := strconv.ParseFloat(s, 64); err == nil {
			return fromExcelSerial(f)
		}
		return time.Time{}, false
	case float64:
		return fromExcelSerial(t)
	default:
		return time.Time{}, false
	}
}

// fromExcelSerial converts a day count from the 1899-12-30 epoch. Values
// outside the serial window are measurements, not dates.
func fromExcelSerial(f float64) (time.Time, bool) {
	if f < excelSerialMin || f > excelSerialMax {
		return time.Time{}, false
	}
	days := int(f)
	frac := f - float64(days)
	ts := excelEpoch.AddDate(0, 0, days)
	return ts.Add(time.Duration(frac * 24 * float64(time.Hour))), true
}

// ParseTimeOfDay interprets a cell as a clock time within an unspecified day,
// returned as an offset from midnight. Values in [0,1) are Excel day
// fractions (0.5 is noon), accepted as floats or as the numeric strings
// spreadsheet decoding produces for unformatted time cells.
func ParseTimeOfDay(v Cell) (time.Duration, bool) {
	switch t := v.(type) {
	case string:
		s := strings.TrimSpace(t)
		if s == "" {
			return 0, false
		}
		for _, layout := range timeOfDayLayouts {
			if ts, err := time.Parse(layout, s); err == nil {
				return time.Duration(ts.Hour())*time.Hour +
					time.Duration(ts.Minute())*time.Minute +
					time.Duration(ts.Second())*time.Second, true
			}
		}
		if f, err := strconv.ParseFloat(s, 64); err == nil {
			return fromDayFraction(f)
		}
		return 0, false
	case float64:
		return fromDayFraction(t)
	default:
		return 0, false
	}
}

func fromDayFraction(f float64) (time.Duration, bool) {
	if f < 0 || f >= 1 {
		return 0, false
	}
	return time.Duration(f * 24 * float64(time.Hour)), true
}
