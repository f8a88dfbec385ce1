// Package domain models tabular exports from portable temperature-logging
// devices and the heuristics that turn them into a clean time series.
//
// # Data Source
//
// Uploads come from vendor desktop tools and device SD-card dumps (CSV, XLSX,
// and mislabeled ".xls" text files). There is no schema contract: header
// names, separators, encodings, and cell formats vary by vendor and locale,
// so every column role is inferred rather than configured.
//
// # Vendor Data Conventions
//
// Header names (observed variants, matched after normalization):
//
//	time:        "DataHora", "Data/Hora", "Timestamp", "date_time", "Tempo",
//	             or a separate "Data" date column paired with an "Hora" column.
//	temperature: "Temperatura (°C)", "Temp", "T", "℃", "Celsius".
//
// Numeric cells (decimal conventions differ between pt-BR and en-US exports):
//
//	pt-BR: "." thousands, "," decimal  →  "1.234,56" = 1234.56
//	en-US: "," thousands, "." decimal  →  "1,234.56" = 1234.56
//	When both separators appear, whichever occurs last is the decimal point.
//	A lone comma is always a decimal point: "23,5" = 23.5.
//	Cells may carry unit noise: "23,5°C", "24 ℃", "25 celsius".
//
// Timestamps:
//
//	Day-first by convention: "01/02/2024" is February 1st, not January 2nd.
//	ISO forms ("2024-02-01 10:00") are accepted as-is. Some spreadsheets emit
//	raw Excel serial numbers (days since 1899-12-30) for date cells.
//	All instants are naive: no time zone is attached or converted.
//
// Sanity bands:
//
//	Column selection treats a median in [-50, 100] °C as plausible for a
//	temperature signal. Final assembly applies a deliberately wider trim,
//	dropping only values > 1000 or < -100, so valid extreme readings survive
//	while sensor error codes (9999, -9999) are discarded.
//
// # Detection
//
// Column roles are picked by weighted scoring, never by position. Ties keep
// the first candidate in table column order, so detection is deterministic
// for a given input. See [DetectTimeColumn] and [RankTemperatureColumns].
package domain
