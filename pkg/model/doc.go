// Package model contains the database models for complymap entities.
package model
