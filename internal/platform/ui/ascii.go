// internal/platform/ui/ascii.go
package ui

// Banner is printed once at the top of styled output.
const Banner = `
╔════════════════════════════════════════════════╗
║                                                ║
║   DEPBOOT                                      ║
║   Library check and installation               ║
║   ════════════════════                         ║
║                                                ║
╚════════════════════════════════════════════════╝`
