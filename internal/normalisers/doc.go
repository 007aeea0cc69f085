// Package normalisers provides pure translation helpers that turn
// external catalog data into domain form. Each subpackage owns one
// shape: mealdb parses and flattens raw catalog records, steps
// segments free-text instructions into a presentable list.
//
// Normalisers never perform I/O. Gateways call them after the
// transport has produced bytes.
package normalisers
