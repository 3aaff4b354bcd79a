// Package publish renders documents and uploads them to a Store.
//
// Two stores are provided: S3Store puts objects into an S3 bucket (or any
// S3-compatible endpoint) and DiskStore writes files under a directory.
//
//	client := publish.NewS3Client(cfg.Publish)
//	p := publish.New(publish.NewS3Store(client, cfg.Publish.Bucket),
//	    publish.WithPrefix(cfg.Publish.Prefix))
//	res, err := p.PublishPage(ctx, "index.html", page)
//
// Every object is stored with Content-Type "text/html; charset=utf-8".
// Each publish runs inside a tagz.publish span.
package publish
