// Package steam discovers the local Steam installation: the installation
// root, the set of library folders it declares, each library's installed
// applications, and the per-application compatdata directories left behind
// by compatibility runtimes.
package steam
