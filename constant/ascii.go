package constant

// AsciiArtLogo is the application's ASCII art banner.
const AsciiArtLogo = `
  __ _ _ __ (_) __| | _____  __
 / _' | '_ \| |/ _' |/ _ \ \/ /
| (_| | | | | | (_| |  __/>  <
 \__,_|_| |_|_|\__,_|\___/_/\_\`
