package config

// StageConfig is the root config for stage JSON files
type StageConfig struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	// Map is the path of the .tmx file inside the config filesystem
	Map         string `json:"map"`
	TileLayer   string `json:"tileLayer"`
	ObjectLayer string `json:"objectLayer"`
}
