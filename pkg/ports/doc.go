/*
Package ports defines the driven ports (interfaces) for the atlas workbook.

These interfaces decouple dataset access from the transforms, so the same exercises
run against bundled files, a directory on disk, Redis or in-memory fixtures.

# Key Interfaces

  - DatasetLoader: Responsible for reading a named dataset into ordered records.
*/
package ports
