// Package fraction reduces a minute to the fraction of the hour it marks.
package fraction
