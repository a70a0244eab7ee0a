// Package scripture fetches Bible passages from a passage API.
//
// # Overview
//
// The [Client] resolves a verse reference and translation into a [Passage]
// holding the passage text and per-verse breakdown. Responses are cached
// (passages are immutable, so cached entries stay valid indefinitely) and
// transient HTTP failures are retried with exponential backoff.
//
// # Usage
//
//	backend, _ := cache.NewFileCache(dir)
//	client := scripture.NewClient(backend, 0)
//
//	passage, err := client.Fetch(ctx, "John 3:16", "web", false)
//	if err != nil {
//	    return err
//	}
//	fmt.Println(passage.Text)
//
// # Errors
//
// Fetch returns structured errors from the errors package:
//
//   - ErrCodeInvalidReference for malformed references
//   - ErrCodeVerseNotFound when the API has no such passage
//   - ErrCodeNetwork for HTTP failures after retries
package scripture
