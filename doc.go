// Package procgo is an embedded query engine for the Japanese government
// administrative-procedures onlinization survey.
//
// The survey ships as a ~75,000-row CSV with two non-schema header lines
// and 38 fixed columns. Procgo parses it once at startup into an immutable
// in-memory store with Roaring-bitmap secondary indexes, then serves point
// lookups, multi-predicate filtered search, summary statistics and
// bounded-memory chunked delivery, all lock-free since nothing mutates
// after build.
//
// # Quick start
//
//	ctx := context.Background()
//	db, err := procgo.Open(ctx,
//	    blobstore.NewLocalStore("./data"),
//	    "procedures-survey.csv",
//	    procgo.WithSnapshotCache("procedures.snap"),
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	rec, err := db.Get("0001")
//
//	results := db.Query().
//	    Authorities("デジタル庁").
//	    Statuses("実施済").
//	    Keyword("登録").
//	    Limit(100).
//	    Execute()
//
//	snap := db.Summarize(query.Query{Authorities: []string{"総務省"}})
//
// Chunked delivery for streaming endpoints:
//
//	cur, err := db.Query().Statuses("未実施").Chunks(procgo.DefaultChunkSize)
//	if err != nil {
//	    return err
//	}
//	err = stream.Deliver(ctx, cur, stream.NewWriter(httpResponse))
//
// The store can be sourced from local disk, memory, Amazon S3 or MinIO
// (package blobstore), optionally warm-started from a compressed snapshot
// of the previous parse (package snapshot).
package procgo
