// Package stats holds the descriptive statistics used when summarising
// measurement sets: TrimmedMean, Range and Shuffled.
package stats
