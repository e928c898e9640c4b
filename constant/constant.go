package constant

const ProjectName = "spiral"

// MainWindowTitle is the title of the spiral window.
const MainWindowTitle = "Prime Spiral"

// AppID identifies the app to fyne's preferences and the desktop session.
const AppID = "io.github.primespiral.spiral"
