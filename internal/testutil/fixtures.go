// Package testutil provides test utilities and fixtures for unit tests.
package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/erraggy/asynctools/dom"
)

// StreetlightsYAML is a small AsyncAPI document with a shared component
// schema, a tag reference, a security requirement and a self-referencing
// schema.
const StreetlightsYAML = `asyncapi: 2.6.0
info:
  title: Streetlights API
  version: 1.0.0
  license:
    name: Apache 2.0
    url: https://www.apache.org/licenses/LICENSE-2.0
servers:
  production:
    url: mqtt://test.mosquitto.org:{port}
    protocol: mqtt
    variables:
      port:
        default: '1883'
        enum: ['1883', '8883']
    security:
      - apiKey: []
tags:
  - name: lights
    description: Lighting operations
channels:
  smartylighting/streetlights/{streetlightId}/lighting/measured:
    parameters:
      streetlightId:
        $ref: '#/components/parameters/streetlightId'
    subscribe:
      operationId: receiveLightMeasurement
      tags:
        - name: lights
      message:
        $ref: '#/components/messages/lightMeasured'
  smartylighting/streetlights/{streetlightId}/action/turn/on:
    parameters:
      streetlightId:
        $ref: '#/components/parameters/streetlightId'
    publish:
      operationId: turnOn
      message:
        $ref: '#/components/messages/turnOnOff'
components:
  messages:
    lightMeasured:
      name: lightMeasured
      contentType: application/json
      payload:
        $ref: '#/components/schemas/lightMeasuredPayload'
      examples:
        - payload:
            lumens: 42
            sentAt: 2024-01-02T03:04:05Z
    turnOnOff:
      name: turnOnOff
      payload:
        $ref: '#/components/schemas/turnOnOffPayload'
  schemas:
    lightMeasuredPayload:
      type: object
      properties:
        lumens:
          type: integer
          minimum: 0
        sentAt:
          $ref: '#/components/schemas/sentAt'
    turnOnOffPayload:
      type: object
      properties:
        command:
          type: string
          enum: ['on', 'off']
        sentAt:
          $ref: '#/components/schemas/sentAt'
    sentAt:
      type: string
      format: date-time
    node:
      type: object
      properties:
        next:
          $ref: '#/components/schemas/node'
  parameters:
    streetlightId:
      description: The ID of the streetlight.
      schema:
        type: string
  securitySchemes:
    apiKey:
      type: apiKey
      in: user
`

// PetstoreYAML is a small OpenAPI document with path operations, a request
// body, responses and a callback.
const PetstoreYAML = `openapi: 3.0.3
info:
  title: Petstore
  version: 1.0.0
servers:
  - url: https://petstore.example.com/v1
paths:
  /pets:
    get:
      operationId: listPets
      tags: [pets]
      parameters:
        - name: limit
          in: query
          schema:
            type: integer
            format: int32
          example: 20
      responses:
        '200':
          description: A list of pets
          content:
            application/json:
              schema:
                type: array
                items:
                  $ref: '#/components/schemas/Pet'
    post:
      operationId: createPet
      requestBody:
        $ref: '#/components/requestBodies/PetBody'
      responses:
        '201':
          description: Created
      callbacks:
        onAdopted:
          '{$request.body#/callbackUrl}':
            post:
              responses:
                '200':
                  description: ok
  /pets/{petId}:
    parameters:
      - $ref: '#/components/parameters/PetId'
    get:
      operationId: showPetById
      responses:
        '200':
          description: A pet
          content:
            application/json:
              schema:
                $ref: '#/components/schemas/Pet'
        default:
          $ref: '#/components/responses/Error'
components:
  schemas:
    Pet:
      type: object
      required: [id, name]
      properties:
        id:
          type: integer
          format: int64
        name:
          type: string
        tag:
          type: string
          example: "123"
  parameters:
    PetId:
      name: petId
      in: path
      required: true
      schema:
        type: string
  requestBodies:
    PetBody:
      required: true
      content:
        application/json:
          schema:
            $ref: '#/components/schemas/Pet'
  responses:
    Error:
      description: unexpected error
tags:
  - name: pets
`

// NewStreetlightsDocument builds the document StreetlightsYAML decodes to,
// with references already resolved.
func NewStreetlightsDocument() *dom.Document {
	sentAt := &dom.Schema{Type: "string", Format: "date-time", AdditionalPropertiesAllowed: true}
	measured := &dom.Schema{
		Type: "object",
		Properties: map[string]*dom.Schema{
			"lumens": {Type: "integer", Minimum: ptr(0.0), AdditionalPropertiesAllowed: true},
			"sentAt": sentAt,
		},
		AdditionalPropertiesAllowed: true,
	}
	turnOnOff := &dom.Schema{
		Type: "object",
		Properties: map[string]*dom.Schema{
			"command": {Type: "string", Enum: []dom.Any{dom.ExplicitStr("on"), dom.ExplicitStr("off")}, AdditionalPropertiesAllowed: true},
			"sentAt":  sentAt,
		},
		AdditionalPropertiesAllowed: true,
	}
	node := &dom.Schema{Type: "object", AdditionalPropertiesAllowed: true}
	node.Properties = map[string]*dom.Schema{"next": node}

	streetlightID := &dom.Parameter{
		Description: "The ID of the streetlight.",
		Schema:      &dom.Schema{Type: "string", AdditionalPropertiesAllowed: true},
	}
	lightMeasured := &dom.Message{Name: "lightMeasured", ContentType: "application/json", Payload: measured}
	turnOnOffMsg := &dom.Message{Name: "turnOnOff", Payload: turnOnOff}
	apiKey := &dom.SecurityScheme{Type: dom.SecurityAPIKey, In: "user"}
	lights := &dom.Tag{Name: "lights", Description: "Lighting operations"}

	doc := &dom.Document{
		AsyncAPI: "2.6.0",
		Info: &dom.Info{
			Title:   "Streetlights API",
			Version: "1.0.0",
			License: &dom.License{Name: "Apache 2.0", URL: "https://www.apache.org/licenses/LICENSE-2.0"},
		},
		Servers: []*dom.Server{{
			Name:     "production",
			URL:      "mqtt://test.mosquitto.org:{port}",
			Protocol: "mqtt",
			Variables: map[string]*dom.ServerVariable{
				"port": {Default: "1883", Enum: []string{"1883", "8883"}},
			},
			Security: []dom.SecurityRequirement{{apiKey: {}}},
		}},
		Tags: []*dom.Tag{lights},
		Channels: map[string]*dom.Channel{
			"smartylighting/streetlights/{streetlightId}/lighting/measured": {
				Parameters: map[string]*dom.Parameter{"streetlightId": streetlightID},
				Subscribe: &dom.Operation{
					OperationID: "receiveLightMeasurement",
					Tags:        []*dom.Tag{lights},
					Message:     lightMeasured,
				},
			},
			"smartylighting/streetlights/{streetlightId}/action/turn/on": {
				Parameters: map[string]*dom.Parameter{"streetlightId": streetlightID},
				Publish: &dom.Operation{
					OperationID: "turnOn",
					Message:     turnOnOffMsg,
				},
			},
		},
		Components: &dom.Components{
			Messages: map[string]*dom.Message{
				"lightMeasured": lightMeasured,
				"turnOnOff":     turnOnOffMsg,
			},
			Schemas: map[string]*dom.Schema{
				"lightMeasuredPayload": measured,
				"turnOnOffPayload":     turnOnOff,
				"sentAt":               sentAt,
				"node":                 node,
			},
			Parameters:      map[string]*dom.Parameter{"streetlightId": streetlightID},
			SecuritySchemes: map[string]*dom.SecurityScheme{"apiKey": apiKey},
		},
	}
	doc.AssignReferences()
	return doc
}

// NewMinimalDocument creates a document with only the required fields.
func NewMinimalDocument() *dom.Document {
	return &dom.Document{
		AsyncAPI: "2.6.0",
		Info: &dom.Info{
			Title:   "Test API",
			Version: "1.0.0",
		},
		Channels: make(map[string]*dom.Channel),
	}
}

func ptr[T any](v T) *T {
	return &v
}

// WriteTempFile writes content to a file named name in a fresh temporary
// directory and returns its path. The directory is removed when the test
// completes.
func WriteTempFile(t *testing.T, name, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatalf("Failed to write temporary file: %v", err)
	}
	return path
}
