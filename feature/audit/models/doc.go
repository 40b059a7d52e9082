// Package models defines the GORM models for the audit history tables.
//
// The gorm column and type tags double as the expected schema for the
// integrity schema check, so keep them explicit.
package models
