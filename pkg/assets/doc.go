// Package assets serves static files for the dev server from a local
// directory or an S3 bucket.
//
//	src, err := assets.Parse(ctx, "s3://my-bucket/site/")
//	if err != nil {
//	    return err
//	}
//	mux.Handle("/assets/", http.StripPrefix("/assets", assets.Handler(src, logger)))
//
// Asset names are slash separated and relative to the source root.
// Names that would escape the root are rejected.
package assets
