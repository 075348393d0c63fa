// Package shell contains the infrastructure shared by all use cases (features):
// the command and query contracts, observability helpers, event metadata, and event publishing.
//
// In Domain-Driven Design or Hexagonal Architecture terminology, this would be
// called the 'infrastructure' or 'adapters' layer.
package shell
