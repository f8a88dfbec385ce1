// Package tabular turns raw upload bytes into a domain.Table. Vendors export
// CSV with any of four delimiters and three encodings, real spreadsheets as
// .xlsx, and sometimes CSV text mislabeled as ".xls"; Decode tries the
// variants in a fixed order and reports every attempt on failure.
package tabular
