// Binary codecs for message body content.
/*
Spanbind's goal is to make a single interface specification for binary
serialization formats, so that payload extraction and response encoding do not
have to be rewritten for every format a service ecosystem adopts.

Specific objectives

1. Handler code works with typed values. The codec boundary owns all
byte-level concerns.

2. Support for a format should be able to be added once to a shared library
and gotten for free by an entire ecosystem.

3. Anything a codec's Marshal produces, its Unmarshal must accept for the same
type, so encode and decode stay symmetric across services.
*/
package codecs
