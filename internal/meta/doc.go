// Package meta collects the information behind `ado meta`: build metadata,
// config and environment resolution, compiled-in features, and a best-effort
// description of the host system.
//
// Every payload type implements ui.TextRenderer so commands can print it in
// any supported output format.
package meta
