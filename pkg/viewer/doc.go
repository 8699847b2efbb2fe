// Package viewer holds the state behind the interactive workflow viewer.
//
// A [Controller] tracks the selected variant, the zoom factor and whether
// a PDF export is running. It owns a [Diagram], the rendered surface whose
// visual scale follows the zoom and which the export pipeline captures.
//
// Zoom is kept in integer tenths so that repeated steps land on exact
// values:
//
//	c, _ := viewer.New(viewer.WithVariant(catalog.Admin))
//	for range 20 {
//	    c.ZoomIn()
//	}
//	c.Zoom() // 2.0
//
// Export is a guarded one-shot. While one export runs, further calls
// return false. Errors never reach the caller; they are logged and
// available from [Controller.LastExport].
package viewer
