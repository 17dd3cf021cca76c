package constant

// AsciiArtLogo is the application's banner printed above the root command help.
const AsciiArtLogo = `
 __   _(_)_ __ ___  ___
 \ \ / / | '__/ _ \/ _ \
  \ V /| | | |  __/ (_) |
   \_/ |_|_|  \___|\___/`
