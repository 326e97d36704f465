// Package results scrapes the examination result page of a single
// registration number.
//
// scraping a result page is read-only and stateless, the output depends
// solely on the registration number. each extraction has this structure:
//  1. transform the registration number into a request url.
//  2. make the request, there are no retries.
//  3. make assertions on response validity (status, presence of the
//     registration number anchor).
//  4. transform the response into a Record using goquery selectors built
//     from the Anchors table.
package results
