// Package persistence keeps the client's list of paired TVs.
//
// The list is a small JSON file next to the client identity. It records
// which TVs completed pairing so the CLI can offer them again, wake them
// with Wake-on-LAN and remember the last one used. The identity itself is
// stored by the identity package.
package persistence
