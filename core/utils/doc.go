// Package utils provides small helpers shared by the parsers and reports,
// mainly the case-insensitive item name key.
package utils
