// Package connectors groups gateways to external recipe catalogs.
// Each subpackage owns one catalog's endpoints and wire format;
// mealdb is the sole connector today.
package connectors
