// Package ntheory provides the integer helpers GCD and LCM.
package ntheory
