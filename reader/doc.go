// Package reader loads batches of scanned page images from the filesystem.
//
// A scan batch is a directory of image files, one file per page. The file
// names carry no trusted ordering information beyond the order the scanner
// emitted them, so Open sorts lexicographically and records that order as
// each page's original scan index.
//
// # Opening a Batch
//
// Use [Open] to list a scan directory:
//
//	pages, err := reader.Open("scans/")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// Open builds the page list without decoding any pixels. Non-image files
// in the directory are skipped.
//
// # Decoding Pages
//
// Use [LoadImage] to decode a single page for OCR. PNG and JPEG decode
// through the standard library; TIFF and BMP through golang.org/x/image.
package reader
