package commands

type CredWordlistCommand struct {
	Generate GenerateCommand `command:"generate" description:"Generate a candidate-password wordlist from personal tokens"`
	Analyze  AnalyzeCommand  `command:"analyze" description:"Score a password against personal tokens"`
	Version  VersionCommand  `command:"version" description:"Displays cred-wordlist version" alias:"V"`
}

var CredWordlist CredWordlistCommand
